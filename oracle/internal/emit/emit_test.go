package emit_test

import (
	"bytes"
	"testing"

	"github.com/wippyai/int-runtime/oracle/internal/emit"
)

func TestModuleHeader(t *testing.T) {
	bin := emit.Module([]emit.Func{{Name: "f", Type: emit.ValI64, Opcode: 0x7C}})
	want := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	if len(bin) < len(want) || !bytes.Equal(bin[:8], want) {
		t.Fatalf("header = % X, want % X", bin[:8], want)
	}
}

func TestModuleSingleFunc(t *testing.T) {
	bin := emit.Module([]emit.Func{{Name: "add", Type: emit.ValI64, Opcode: 0x7C}})
	want := []byte{
		0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00,
		// type: (i64, i64) -> i64
		0x01, 0x07, 0x01, 0x60, 0x02, 0x7E, 0x7E, 0x01, 0x7E,
		// function: one body of type 0
		0x03, 0x02, 0x01, 0x00,
		// export: "add" func 0
		0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00,
		// code: no locals, local.get 0, local.get 1, i64.add, end
		0x0A, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x7C, 0x0B,
	}
	if !bytes.Equal(bin, want) {
		t.Fatalf("module = % X\nwant     % X", bin, want)
	}
}

func TestModuleSharesTypes(t *testing.T) {
	bin := emit.Module([]emit.Func{
		{Name: "a", Type: emit.ValI64, Opcode: 0x7C},
		{Name: "b", Type: emit.ValI64, Opcode: 0x7D},
		{Name: "c", Type: emit.ValI32, Opcode: 0x6A},
	})
	// The type section starts after the 8-byte header: id 1, size, then
	// the signature count. Two value types means two entries.
	if bin[8] != 0x01 {
		t.Fatalf("expected type section first, got id %d", bin[8])
	}
	if count := bin[10]; count != 2 {
		t.Fatalf("type count = %d, want 2", count)
	}
}
