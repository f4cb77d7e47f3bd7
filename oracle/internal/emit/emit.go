// Package emit builds the minimal WebAssembly binary the oracle
// executes. It covers exactly what a module of exported two-operand
// arithmetic functions needs: LEB128 integer encoding, the type,
// function, export, and code sections, and nothing else.
package emit

import "bytes"

// Constants for the slice of the binary format we emit.
const (
	sectionType     byte = 1
	sectionFunction byte = 3
	sectionExport   byte = 7
	sectionCode     byte = 10

	funcTypeByte byte = 0x60
	kindFunc     byte = 0

	ValI32 byte = 0x7F
	ValI64 byte = 0x7E

	opLocalGet byte = 0x20
	opEnd      byte = 0x0B
)

// Func describes one exported function: two parameters and one result
// of the same value type, whose body applies a single binary opcode to
// the parameters.
type Func struct {
	Name   string
	Type   byte // ValI32 or ValI64
	Opcode byte
}

// Module encodes a wasm module exporting the given functions. Functions
// sharing a value type share a type-section entry.
func Module(funcs []Func) []byte {
	var w bytes.Buffer
	w.Write([]byte{0x00, 0x61, 0x73, 0x6D}) // "\0asm"
	w.Write([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	// Type section: one signature per distinct value type, in first-use
	// order.
	typeIdx := map[byte]uint32{}
	var types []byte
	for _, f := range funcs {
		if _, ok := typeIdx[f.Type]; ok {
			continue
		}
		typeIdx[f.Type] = uint32(len(typeIdx))
		types = append(types, f.Type)
	}
	sec := &bytes.Buffer{}
	writeU32(sec, uint32(len(types)))
	for _, vt := range types {
		sec.WriteByte(funcTypeByte)
		writeU32(sec, 2) // params
		sec.WriteByte(vt)
		sec.WriteByte(vt)
		writeU32(sec, 1) // results
		sec.WriteByte(vt)
	}
	writeSection(&w, sectionType, sec.Bytes())

	// Function section: type index per function.
	sec = &bytes.Buffer{}
	writeU32(sec, uint32(len(funcs)))
	for _, f := range funcs {
		writeU32(sec, typeIdx[f.Type])
	}
	writeSection(&w, sectionFunction, sec.Bytes())

	// Export section.
	sec = &bytes.Buffer{}
	writeU32(sec, uint32(len(funcs)))
	for i, f := range funcs {
		writeU32(sec, uint32(len(f.Name)))
		sec.WriteString(f.Name)
		sec.WriteByte(kindFunc)
		writeU32(sec, uint32(i))
	}
	writeSection(&w, sectionExport, sec.Bytes())

	// Code section: local.get 0, local.get 1, opcode, end.
	sec = &bytes.Buffer{}
	writeU32(sec, uint32(len(funcs)))
	for _, f := range funcs {
		body := []byte{0x00, opLocalGet, 0x00, opLocalGet, 0x01, f.Opcode, opEnd}
		writeU32(sec, uint32(len(body)))
		sec.Write(body)
	}
	writeSection(&w, sectionCode, sec.Bytes())

	return w.Bytes()
}

func writeSection(w *bytes.Buffer, id byte, payload []byte) {
	w.WriteByte(id)
	writeU32(w, uint32(len(payload)))
	w.Write(payload)
}

// writeU32 writes an unsigned LEB128 value.
func writeU32(w *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}
