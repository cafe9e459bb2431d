package abi

import "unsafe"

// Predefined log stream selectors (aiDefaultLogStream).
const (
	LogStreamFile     int32 = 0x1
	LogStreamStdout   int32 = 0x2
	LogStreamStderr   int32 = 0x4
	LogStreamDebugger int32 = 0x8
)

// File mirrors aiFile, the per-file callback table. The procs are C
// function pointers.
type File struct {
	ReadProc     unsafe.Pointer
	WriteProc    unsafe.Pointer
	TellProc     unsafe.Pointer
	FileSizeProc unsafe.Pointer
	SeekProc     unsafe.Pointer
	FlushProc    unsafe.Pointer
	UserData     *byte
}

// FileIO mirrors aiFileIO, the file system callback table.
type FileIO struct {
	OpenProc  unsafe.Pointer
	CloseProc unsafe.Pointer
	UserData  *byte
}

// LogStream mirrors aiLogStream.
type LogStream struct {
	Callback unsafe.Pointer
	User     *byte
}

// ExportFormatDesc mirrors aiExportFormatDesc.
type ExportFormatDesc struct {
	ID            *byte
	Description   *byte
	FileExtension *byte
}

// ExportDataBlob mirrors aiExportDataBlob, one node of a singly linked
// list of named buffers.
type ExportDataBlob struct {
	Size uintptr
	Data unsafe.Pointer
	Name String
	Next *ExportDataBlob
}

// ImporterDesc mirrors aiImporterDesc.
type ImporterDesc struct {
	Name           *byte
	Author         *byte
	Maintainer     *byte
	Comments       *byte
	Flags          uint32
	MinMajor       uint32
	MinMinor       uint32
	MaxMajor       uint32
	MaxMinor       uint32
	FileExtensions *byte
}

// Importer capability bits (aiImporterFlags).
const (
	ImporterSupportTextFlavour   uint32 = 0x1
	ImporterSupportBinaryFlavour uint32 = 0x2
	ImporterSupportCompressed    uint32 = 0x4
	ImporterLimitedSupport       uint32 = 0x8
	ImporterExperimental         uint32 = 0x10
)
