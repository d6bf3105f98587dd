// Package parser provides container sniffing and per-format sheet parsing.
package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"

	"github.com/richardlehane/mscfb"
)

// Container is the outer file container detected from magic bytes.
type Container int

const (
	// ContainerUnknown means neither signature matched.
	ContainerUnknown Container = iota
	// ContainerZip is a zip archive (modern OOXML workbook).
	ContainerZip
	// ContainerOLE is an OLE2 compound document (legacy .xls or an
	// encrypted OOXML package).
	ContainerOLE
)

// OLEKind classifies the streams found inside an OLE compound document.
type OLEKind int

const (
	// OLEUnknown is a compound document with no recognized workbook stream.
	OLEUnknown OLEKind = iota
	// OLELegacyWorkbook carries a BIFF "Workbook" or "Book" stream.
	OLELegacyWorkbook
	// OLEEncryptedPackage carries an "EncryptedPackage" stream, i.e. a
	// password-protected OOXML workbook.
	OLEEncryptedPackage
)

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// vbaProjectPart is the zip part holding the macro payload of a
// macro-enabled workbook.
const vbaProjectPart = "xl/vbaProject.bin"

// Sniff detects the outer container format from the file's magic bytes.
func Sniff(data []byte) Container {
	switch {
	case bytes.HasPrefix(data, zipMagic):
		return ContainerZip
	case bytes.HasPrefix(data, oleMagic):
		return ContainerOLE
	default:
		return ContainerUnknown
	}
}

// ClassifyOLE walks the compound document directory and reports what kind of
// workbook it wraps.
func ClassifyOLE(data []byte) (OLEKind, error) {
	doc, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return OLEUnknown, err
	}
	kind := OLEUnknown
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		switch entry.Name {
		case "EncryptedPackage":
			// Encryption wins over any workbook stream.
			return OLEEncryptedPackage, nil
		case "Workbook", "Book":
			kind = OLELegacyWorkbook
		}
	}
	return kind, nil
}

// ReadMacroPayload returns the raw vbaProject part of a zip-based workbook,
// byte-for-byte, or nil when the workbook carries no macros.
func ReadMacroPayload(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if f.Name != vbaProjectPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		payload, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		if len(payload) == 0 {
			return nil, errors.New("empty vbaProject part")
		}
		return payload, nil
	}
	return nil, nil
}
