package posixmode

// POSIX file mode bit masks as defined by <sys/stat.h>.
// The type field occupies the high four bits of the 16-bit mode word,
// the special bits the next three, and the permission bits the low nine.
const (
	// TypeMask selects the file type field of a mode word (S_IFMT).
	TypeMask uint32 = 0170000

	// File type field values, compared against mode&TypeMask.
	TypeNamedPipe   uint32 = 0010000 // S_IFIFO
	TypeCharDevice  uint32 = 0020000 // S_IFCHR
	TypeDirectory   uint32 = 0040000 // S_IFDIR
	TypeBlockDevice uint32 = 0060000 // S_IFBLK
	TypeFile        uint32 = 0100000 // S_IFREG
	TypeSymlink     uint32 = 0120000 // S_IFLNK
	TypeSocket      uint32 = 0140000 // S_IFSOCK

	// Special bits, orthogonal to the permission bits.
	MaskSetUID uint32 = 04000 // S_ISUID
	MaskSetGID uint32 = 02000 // S_ISGID
	MaskSticky uint32 = 01000 // S_ISVTX

	// Per-scope permission bits.
	MaskUserRead     uint32 = 0400
	MaskUserWrite    uint32 = 0200
	MaskUserExecute  uint32 = 0100
	MaskGroupRead    uint32 = 0040
	MaskGroupWrite   uint32 = 0020
	MaskGroupExecute uint32 = 0010
	MaskOtherRead    uint32 = 0004
	MaskOtherWrite   uint32 = 0002
	MaskOtherExecute uint32 = 0001

	// MaskPerm selects all nine permission bits.
	MaskPerm uint32 = 0777

	// MaskSpecial selects the setUID, setGID and sticky bits.
	MaskSpecial uint32 = 07000
)
