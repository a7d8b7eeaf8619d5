package wirebuf

import (
	"os"
	"path"
	"strings"
	"time"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/wirekit/wirebuf/bytebuffer"
	"github.com/wirekit/wirebuf/savedump"
)

// SaveDirName is the directory under the configured tmp dir holding save files
const SaveDirName = "wirebuf"

func saveFileLocation(name string) (string, error) {
	if name == "" {
		return "", errors.New("name cannot be empty")
	}

	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return "", errors.New("name cannot have path separator")
	}

	var loc string
	switch tdir := Config.TmpDir; {
	case tdir == "":
		loc = os.TempDir()
	case path.IsAbs(tdir):
		loc = tdir
	default:
		loc = path.Join(RootPath, tdir)
	}

	return path.Join(loc, SaveDirName, name), nil
}

// SaveFile stores a buffer's unread bytes in a memory mapped file and loads
// them back.
//
// Every Store maps, fills, flushes and unmaps the file, no mapping is kept
// around between calls.
type SaveFile struct {
	loc   string // absolute location of the save file
	flags uint32 // written to the header, opaque to wirebuf
}

// NewSaveFile returns a SaveFile called name inside the configured save
// directory. Nothing is touched on disk until Store is called.
func NewSaveFile(name string, flags uint32) (*SaveFile, error) {
	loc, err := saveFileLocation(name)
	if err != nil {
		return nil, err
	}

	return &SaveFile{
		loc:   loc,
		flags: flags,
	}, nil
}

// Location returns the absolute path of the save file
func (s *SaveFile) Location() string { return s.loc }

// image assembles the complete file contents for payload.
//
// The header goes in first with a zero generation and is patched in place
// once payload and trailer are written, so a file only carries matching
// generations if the whole image made it to disk.
func (s *SaveFile) image(payload *bytebuffer.ByteBuffer, generation int64) *bytebuffer.ByteBuffer {
	b := bytebuffer.NewByteBuffer(savedump.MinFileLength + payload.Len())

	savedump.WriteHeader(b, savedump.NewHeader(0, s.flags))
	b.WriteBuffer(payload)
	b.WriteInt64(generation)

	_ = b.Rewrite(func(b *bytebuffer.ByteBuffer) error {
		savedump.WriteHeader(b, savedump.NewHeader(generation, s.flags))
		return nil
	})

	return b
}

// Store writes the unread bytes of payload to the save file, replacing any
// previous contents. payload itself is left untouched.
func (s *SaveFile) Store(payload *bytebuffer.ByteBuffer) error {
	generation := time.Now().UnixNano()
	img := s.image(payload, generation)

	if err := os.MkdirAll(path.Dir(s.loc), 0700); err != nil {
		return errors.Wrap(err, "cannot create save directory")
	}

	f, err := os.OpenFile(s.loc, os.O_CREATE|os.O_RDWR|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrap(err, "cannot open save file")
	}
	defer f.Close()

	if err = f.Truncate(int64(img.Len())); err != nil {
		return errors.Wrap(err, "cannot size save file")
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		if logging {
			logger.Error("cannot map save file", zap.String("file", s.loc), zap.Error(err))
		}
		return errors.Wrap(err, "cannot map save file")
	}

	copy(m, img.View())

	if err = m.Flush(); err != nil {
		m.Unmap()
		return errors.Wrap(err, "cannot flush save file")
	}

	if err = m.Unmap(); err != nil {
		return errors.Wrap(err, "cannot unmap save file")
	}

	if logging {
		logger.Info("stored save file",
			zap.String("file", s.loc),
			zap.Int64("generation", generation),
			zap.Int("payload", payload.Len()),
			zap.Int("length", img.Len()),
		)
	}

	return nil
}

// MustStore is a Store that panics
func (s *SaveFile) MustStore(payload *bytebuffer.ByteBuffer) {
	if err := s.Store(payload); err != nil {
		panic(err)
	}
}

// LoadFile maps the save file read only and decodes it
func (s *SaveFile) LoadFile() (*savedump.File, error) {
	f, err := os.Open(s.loc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open save file")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "cannot stat save file")
	}

	if fi.Size() < savedump.MinFileLength {
		return nil, errors.Wrapf(savedump.ErrTruncated, "save file is only %d bytes", fi.Size())
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "cannot map save file")
	}
	defer m.Unmap()

	d, err := savedump.Dump(m)
	if err != nil {
		if logging {
			logger.Error("invalid save file", zap.String("file", s.loc), zap.Error(err))
		}
		return nil, err
	}

	return d, nil
}

// Load returns the payload stored in the save file
func (s *SaveFile) Load() (*bytebuffer.ByteBuffer, error) {
	d, err := s.LoadFile()
	if err != nil {
		return nil, err
	}

	if logging {
		logger.Info("loaded save file",
			zap.String("file", s.loc),
			zap.Int64("generation", d.Header.G1),
			zap.Int("payload", d.Payload.Len()),
		)
	}

	return d.Payload, nil
}

// Remove deletes the save file
func (s *SaveFile) Remove() error {
	if err := os.Remove(s.loc); err != nil {
		return errors.Wrap(err, "cannot remove save file")
	}
	return nil
}
