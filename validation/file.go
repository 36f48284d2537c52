package validation

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// HEIF files are ISO-BMFF containers: 4-byte box size, "ftyp", then the
// 4-byte major brand.
var heifBrands = [][]byte{
	[]byte("heic"),
	[]byte("heix"),
	[]byte("heim"),
	[]byte("heis"),
	[]byte("hevc"),
	[]byte("hevx"),
	[]byte("mif1"),
	[]byte("msf1"),
}

func HasHEICExtension(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".heic")
}

func ValidateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return ErrQualityRange
	}
	return nil
}

func DetectHEIF(r io.Reader) error {
	buffer := make([]byte, 12)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return err
	}
	if n < 12 {
		return ErrNotHEIF
	}

	if !bytes.Equal(buffer[4:8], []byte("ftyp")) {
		return ErrNotHEIF
	}

	majorBrand := buffer[8:12]
	for _, brand := range heifBrands {
		if bytes.Equal(majorBrand, brand) {
			return nil
		}
	}

	return ErrNotHEIF
}
