// Package nvm provides a small directory-backed store with atomic,
// tear-resilient updates.
//
// Every entry owns two slot files. An update always overwrites the stale
// slot and leaves the current one untouched, so a crash mid-write never
// damages the last complete value. Each slot carries a digest of its
// payload: a torn or tampered slot fails the check and the reader falls
// back to the other slot.
package nvm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/facebookgo/atomicfile"
	"github.com/fxamacker/cbor/v2"
	fslock "github.com/ipfs/go-fs-lock"
	"github.com/rs/zerolog"

	"github.com/cxkit/crypto/hash"
)

const (
	lockFile = "nvm.lock"
	slotAExt = ".a"
	slotBExt = ".b"

	maxNameLen = 128
)

var (
	// ErrNotFound is returned when reading a name that was never stored.
	ErrNotFound = errors.New("value not found")
	// ErrCorrupt is returned when a value is stored but none of its slots
	// passes the integrity check.
	ErrCorrupt = errors.New("stored value is corrupt")
)

// Slot files of identical content must be byte-reproducible, hence the
// deterministic encoding mode.
var encMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

var decMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// envelope is the decoded content of one slot file.
type envelope struct {
	// Seq increases by one on every completed update, the slot with the
	// highest sequence number holds the latest value.
	Seq     uint64
	Payload []byte
	// Digest is the SHA3-256 hash of Payload. A slot with a broken digest
	// is treated as never written.
	Digest hash.Hash
}

// Store is a directory of two-slot entries, held exclusively through a
// file lock for the lifetime of the process.
type Store struct {
	log  zerolog.Logger
	dir  string
	lock io.Closer
}

// Open opens the store rooted at dir, creating the directory when missing.
// The directory is locked so that a second process cannot open the same
// store concurrently.
func Open(log zerolog.Logger, dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	lock, err := fslock.Lock(dir, lockFile)
	if err != nil {
		return nil, fmt.Errorf("locking store directory: %w", err)
	}
	return &Store{
		log:  log.With().Str("component", "nvm").Str("dir", dir).Logger(),
		dir:  dir,
		lock: lock,
	}, nil
}

// Dir returns the directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Close releases the directory lock. The store must not be used afterwards.
func (s *Store) Close() error {
	return s.lock.Close()
}

// Get returns the stored payload of name.
// It returns ErrNotFound if the name was never stored, and ErrCorrupt when
// slots are present but none passes the integrity check.
func (s *Store) Get(name string) ([]byte, error) {
	if err := validName(name); err != nil {
		return nil, err
	}
	env, _, err := s.current(name)
	if err != nil {
		return nil, err
	}
	return env.Payload, nil
}

// Put stores payload under name. The update is atomic: it overwrites the
// stale slot only, so the previous value stays readable if the write is
// interrupted.
func (s *Store) Put(name string, payload []byte) error {
	if err := validName(name); err != nil {
		return err
	}
	env, stale, err := s.current(name)
	var seq uint64
	switch {
	case err == nil:
		seq = env.Seq + 1
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrCorrupt):
		// nothing readable survives anyway, restart the sequence
		seq = 1
	default:
		return err
	}
	return s.writeSlot(stale, &envelope{
		Seq:     seq,
		Payload: payload,
		Digest:  hash.NewSHA3_256().ComputeHash(payload),
	})
}

// Delete removes name and both its slots. Deleting an absent name is not
// an error.
func (s *Store) Delete(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	for _, ext := range []string{slotAExt, slotBExt} {
		err := os.Remove(filepath.Join(s.dir, name+ext))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing slot %s: %w", name+ext, err)
		}
	}
	return nil
}

// List returns the sorted names having at least one slot file, including
// names whose slots are all corrupt.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory: %w", err)
	}
	seen := make(map[string]struct{})
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := e.Name()
		name := strings.TrimSuffix(strings.TrimSuffix(base, slotAExt), slotBExt)
		if name == base || validName(name) != nil {
			continue
		}
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// current returns the latest valid envelope of name together with the path
// of the stale slot, the one the next update overwrites.
func (s *Store) current(name string) (*envelope, string, error) {
	pathA := filepath.Join(s.dir, name+slotAExt)
	pathB := filepath.Join(s.dir, name+slotBExt)
	envA, okA := s.readSlot(pathA)
	envB, okB := s.readSlot(pathB)

	switch {
	case okA && okB:
		// both slots are intact, which happens after any two successful
		// updates. The higher sequence number is the latest complete
		// write, slot A wins a tie.
		if envA.Seq >= envB.Seq {
			return envA, pathB, nil
		}
		return envB, pathA, nil
	case okA:
		return envA, pathB, nil
	case okB:
		return envB, pathA, nil
	}

	// distinguish a missing value from an unreadable one
	_, errA := os.Stat(pathA)
	_, errB := os.Stat(pathB)
	if os.IsNotExist(errA) && os.IsNotExist(errB) {
		return nil, pathA, ErrNotFound
	}
	return nil, pathA, ErrCorrupt
}

// readSlot decodes and checks one slot file. A missing, undecodable or
// digest-mismatching slot reports ok false.
func (s *Store) readSlot(path string) (*envelope, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var env envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		s.log.Warn().Err(err).Str("slot", filepath.Base(path)).Msg("skipping undecodable slot")
		return nil, false
	}
	digest := hash.NewSHA3_256().ComputeHash(env.Payload)
	if !digest.Equal(env.Digest) {
		s.log.Warn().Str("slot", filepath.Base(path)).Msg("skipping slot with a broken digest")
		return nil, false
	}
	return &env, true
}

func (s *Store) writeSlot(path string, env *envelope) error {
	data, err := encMode.Marshal(env)
	if err != nil {
		return fmt.Errorf("encoding slot: %w", err)
	}
	f, err := atomicfile.New(path, 0o600)
	if err != nil {
		return fmt.Errorf("opening slot %s: %w", filepath.Base(path), err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Abort()
		return fmt.Errorf("writing slot %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("committing slot %s: %w", filepath.Base(path), err)
	}
	s.log.Debug().Str("slot", filepath.Base(path)).Uint64("seq", env.Seq).Msg("slot written")
	return nil
}

func validName(name string) error {
	if len(name) == 0 || len(name) > maxNameLen {
		return fmt.Errorf("name must be between 1 and %d characters, got %d", maxNameLen, len(name))
	}
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("name %q contains characters outside [a-zA-Z0-9._-]", name)
	}
	return nil
}
