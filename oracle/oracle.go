// Package oracle provides an independent reference implementation of
// the native-width division primitives.
//
// The reference is a tiny WebAssembly module exporting i64 and i32
// div/rem in both signednesses, executed under wazero. Because the wasm
// semantics of integer division are fixed by the WebAssembly
// specification and implemented by an engine that shares no code with
// this library, agreement between the two is meaningful evidence of
// correctness. The conformance runner uses it for differential checking
// of every 64-bit and 32-bit vector.
//
// Wasm traps on a zero divisor and on the MinInt/-1 quotient; those
// surface here as *errors.Error with KindTrap.
package oracle

import (
	"context"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	interrors "github.com/wippyai/int-runtime/errors"
	"github.com/wippyai/int-runtime/oracle/internal/emit"
)

// Opcodes for the emitted bodies, from the wasm binary format.
const (
	opI32DivS byte = 0x6D
	opI32DivU byte = 0x6E
	opI32RemS byte = 0x6F
	opI32RemU byte = 0x70
	opI64DivS byte = 0x7F
	opI64DivU byte = 0x80
	opI64RemS byte = 0x81
	opI64RemU byte = 0x82
)

// Oracle executes division through a wasm reference module.
//
// An Oracle is safe for concurrent use; calls are serialized because a
// wazero module instance is single-threaded.
type Oracle struct {
	mu      sync.Mutex
	runtime wazero.Runtime
	mod     api.Module
}

// New compiles and instantiates the reference module.
func New(ctx context.Context) (*Oracle, error) {
	bin := emit.Module([]emit.Func{
		{Name: "div_s", Type: emit.ValI64, Opcode: opI64DivS},
		{Name: "div_u", Type: emit.ValI64, Opcode: opI64DivU},
		{Name: "rem_s", Type: emit.ValI64, Opcode: opI64RemS},
		{Name: "rem_u", Type: emit.ValI64, Opcode: opI64RemU},
		{Name: "div_s32", Type: emit.ValI32, Opcode: opI32DivS},
		{Name: "div_u32", Type: emit.ValI32, Opcode: opI32DivU},
		{Name: "rem_s32", Type: emit.ValI32, Opcode: opI32RemS},
		{Name: "rem_u32", Type: emit.ValI32, Opcode: opI32RemU},
	})

	r := wazero.NewRuntime(ctx)
	mod, err := r.Instantiate(ctx, bin)
	if err != nil {
		r.Close(ctx)
		return nil, interrors.Trap("oracle.New", err)
	}
	return &Oracle{runtime: r, mod: mod}, nil
}

// Close releases the wasm runtime.
func (o *Oracle) Close(ctx context.Context) error {
	return o.runtime.Close(ctx)
}

func (o *Oracle) call(ctx context.Context, name string, a, b uint64) (uint64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	res, err := o.mod.ExportedFunction(name).Call(ctx, a, b)
	if err != nil {
		return 0, interrors.Trap("oracle."+name, err)
	}
	return res[0], nil
}

// DivS returns the wasm i64.div_s quotient of a / b.
func (o *Oracle) DivS(ctx context.Context, a, b int64) (int64, error) {
	v, err := o.call(ctx, "div_s", api.EncodeI64(a), api.EncodeI64(b))
	return int64(v), err
}

// RemS returns the wasm i64.rem_s remainder of a / b.
func (o *Oracle) RemS(ctx context.Context, a, b int64) (int64, error) {
	v, err := o.call(ctx, "rem_s", api.EncodeI64(a), api.EncodeI64(b))
	return int64(v), err
}

// DivU returns the wasm i64.div_u quotient of n / d.
func (o *Oracle) DivU(ctx context.Context, n, d uint64) (uint64, error) {
	return o.call(ctx, "div_u", n, d)
}

// RemU returns the wasm i64.rem_u remainder of n / d.
func (o *Oracle) RemU(ctx context.Context, n, d uint64) (uint64, error) {
	return o.call(ctx, "rem_u", n, d)
}

// DivS32 returns the wasm i32.div_s quotient of a / b.
func (o *Oracle) DivS32(ctx context.Context, a, b int32) (int32, error) {
	v, err := o.call(ctx, "div_s32", api.EncodeI32(a), api.EncodeI32(b))
	return api.DecodeI32(v), err
}

// RemS32 returns the wasm i32.rem_s remainder of a / b.
func (o *Oracle) RemS32(ctx context.Context, a, b int32) (int32, error) {
	v, err := o.call(ctx, "rem_s32", api.EncodeI32(a), api.EncodeI32(b))
	return api.DecodeI32(v), err
}

// DivU32 returns the wasm i32.div_u quotient of n / d.
func (o *Oracle) DivU32(ctx context.Context, n, d uint32) (uint32, error) {
	v, err := o.call(ctx, "div_u32", uint64(n), uint64(d))
	return uint32(v), err
}

// RemU32 returns the wasm i32.rem_u remainder of n / d.
func (o *Oracle) RemU32(ctx context.Context, n, d uint32) (uint32, error) {
	v, err := o.call(ctx, "rem_u32", uint64(n), uint64(d))
	return uint32(v), err
}
