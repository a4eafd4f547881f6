// This file is part of eg3200.
//
// eg3200 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// eg3200 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with eg3200.  If not, see <https://www.gnu.org/licenses/>.

package cmdfile

import (
	"fmt"
	"strings"

	"github.com/eacaemu/eg3200/curated"
)

// Record types.
const (
	ObjectCode      = 0x01
	TransferAddress = 0x02
	ModuleHeader    = 0x05
	Copyright       = 0x1f
)

// List of error patterns returned by the cmdfile package.
const (
	Truncated = "cmdfile: truncated record at offset %d (%s)"
	EmptyFile = "cmdfile: no records"
)

// Block is a single object code record.
type Block struct {
	Address uint16
	Data    []uint8
}

func (b Block) String() string {
	return fmt.Sprintf("%04x-%04x (%d bytes)", b.Address, int(b.Address)+len(b.Data)-1, len(b.Data))
}

// File is the parsed content of a /CMD file.
type File struct {
	Blocks []Block

	// the transfer address is only valid if HasTransfer is true
	Transfer    uint16
	HasTransfer bool

	Header    string
	Copyright string

	// types of records that were skipped, in the order they were found
	Skipped []uint8
}

// Parse the data of a /CMD file. Data after a transfer address record is
// ignored.
func Parse(data []uint8) (*File, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(EmptyFile)
	}

	f := &File{}

	idx := 0
	for idx < len(data) {
		start := idx

		if idx+2 > len(data) {
			return nil, curated.Errorf(Truncated, start, "record type without length")
		}
		typ := data[idx]
		length := int(data[idx+1])
		idx += 2

		switch typ {
		case ObjectCode:
			if idx+2 > len(data) {
				return nil, curated.Errorf(Truncated, start, "object code address")
			}
			address := uint16(data[idx]) | uint16(data[idx+1])<<8
			idx += 2

			length -= 2
			if length <= 0 {
				length += 256
			}
			if idx+length > len(data) {
				return nil, curated.Errorf(Truncated, start, fmt.Sprintf("object code at %04x needs %d bytes", address, length))
			}

			f.Blocks = append(f.Blocks, Block{
				Address: address,
				Data:    append([]uint8{}, data[idx:idx+length]...),
			})
			idx += length

		case TransferAddress:
			if idx+2 > len(data) {
				return nil, curated.Errorf(Truncated, start, "transfer address")
			}
			f.Transfer = uint16(data[idx]) | uint16(data[idx+1])<<8
			f.HasTransfer = true
			return f, nil

		default:
			if length == 0 {
				length = 256
			}
			if idx+length > len(data) {
				return nil, curated.Errorf(Truncated, start, fmt.Sprintf("record type %02x", typ))
			}

			switch typ {
			case ModuleHeader:
				f.Header = printable(data[idx : idx+length])
			case Copyright:
				f.Copyright = printable(data[idx : idx+length])
			default:
				f.Skipped = append(f.Skipped, typ)
			}
			idx += length
		}
	}

	return f, nil
}

func printable(b []uint8) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e {
			return -1
		}
		return r
	}, string(b)))
}

// Size returns the number of bytes of object code.
func (f *File) Size() int {
	var n int
	for _, b := range f.Blocks {
		n += len(b.Data)
	}
	return n
}

func (f *File) String() string {
	s := strings.Builder{}
	if f.Header != "" {
		s.WriteString(fmt.Sprintf("header: %s\n", f.Header))
	}
	if f.Copyright != "" {
		s.WriteString(fmt.Sprintf("copyright: %s\n", f.Copyright))
	}
	for _, b := range f.Blocks {
		s.WriteString(fmt.Sprintf("block: %s\n", b))
	}
	if len(f.Skipped) > 0 {
		s.WriteString(fmt.Sprintf("skipped: % 02x\n", f.Skipped))
	}
	if f.HasTransfer {
		s.WriteString(fmt.Sprintf("transfer: %04x\n", f.Transfer))
	} else {
		s.WriteString("transfer: none\n")
	}
	return s.String()
}

// Writer is the write path of the machine the file is loaded into.
type Writer interface {
	Write(address uint16, data uint8)
}

// Load writes every block of the file through the Writer. Blocks that run past
// the top of memory wrap around to address zero.
func (f *File) Load(w Writer) {
	for _, b := range f.Blocks {
		for i, v := range b.Data {
			w.Write(b.Address+uint16(i), v)
		}
	}
}
