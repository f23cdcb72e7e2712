package posixmode

import (
	"encoding/json"
	"fmt"
)

// FileType identifies the kind of filesystem object encoded in the type
// field of a mode word.
type FileType int

// File type constants matching the POSIX type field values.
const (
	FileTypeDirectory       FileType = iota // d: directory
	FileTypeFile                            // -: regular file
	FileTypeBlockDevice                     // b: block device
	FileTypeCharacterDevice                 // c: character device
	FileTypeSymlink                         // l: symbolic link
	FileTypeNamedPipe                       // p: named pipe (FIFO)
	FileTypeSocket                          // s: Unix domain socket
	FileTypeOther                           // ?: unrecognized type field
)

// FileTypeOf classifies the type field of a raw mode word. The seven known
// POSIX type values map onto their FileType; any other field value,
// including the BSD whiteout value, is reported as FileTypeOther.
func FileTypeOf(raw uint32) FileType {
	switch raw & TypeMask {
	case TypeDirectory:
		return FileTypeDirectory
	case TypeFile:
		return FileTypeFile
	case TypeBlockDevice:
		return FileTypeBlockDevice
	case TypeCharDevice:
		return FileTypeCharacterDevice
	case TypeSymlink:
		return FileTypeSymlink
	case TypeNamedPipe:
		return FileTypeNamedPipe
	case TypeSocket:
		return FileTypeSocket
	default:
		return FileTypeOther
	}
}

// HasSetUID reports whether the setUID bit is set in raw.
func HasSetUID(raw uint32) bool {
	return raw&MaskSetUID != 0
}

// HasSetGID reports whether the setGID bit is set in raw.
func HasSetGID(raw uint32) bool {
	return raw&MaskSetGID != 0
}

// HasSticky reports whether the sticky bit is set in raw.
func HasSticky(raw uint32) bool {
	return raw&MaskSticky != 0
}

func (t FileType) String() string {
	switch t {
	case FileTypeDirectory:
		return "directory"
	case FileTypeFile:
		return "file"
	case FileTypeBlockDevice:
		return "block-device"
	case FileTypeCharacterDevice:
		return "character-device"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeNamedPipe:
		return "named-pipe"
	case FileTypeSocket:
		return "socket"
	default:
		return "other"
	}
}

// char returns the ls -l type character for t.
func (t FileType) char() byte {
	switch t {
	case FileTypeDirectory:
		return 'd'
	case FileTypeFile:
		return '-'
	case FileTypeBlockDevice:
		return 'b'
	case FileTypeCharacterDevice:
		return 'c'
	case FileTypeSymlink:
		return 'l'
	case FileTypeNamedPipe:
		return 'p'
	case FileTypeSocket:
		return 's'
	default:
		return '?'
	}
}

// MarshalJSON encodes the file type as its string name.
func (t FileType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a file type from its string name.
func (t *FileType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := parseFileType(name)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func parseFileType(name string) (FileType, error) {
	switch name {
	case "directory":
		return FileTypeDirectory, nil
	case "file":
		return FileTypeFile, nil
	case "block-device":
		return FileTypeBlockDevice, nil
	case "character-device":
		return FileTypeCharacterDevice, nil
	case "symlink":
		return FileTypeSymlink, nil
	case "named-pipe":
		return FileTypeNamedPipe, nil
	case "socket":
		return FileTypeSocket, nil
	case "other":
		return FileTypeOther, nil
	default:
		return FileTypeOther, fmt.Errorf("posixmode: unknown file type %q", name)
	}
}
