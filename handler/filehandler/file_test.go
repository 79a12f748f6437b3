package filehandler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func mustNoError(t *testing.T, op string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s error = %v", op, err)
	}
}

func TestSlot_LazyOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	s := NewSlot(path, Append)

	if s.IsOpen() {
		t.Error("New slot should be closed")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Slot must not create the file before the first write")
	}

	mustNoError(t, "Write()", s.Write([]byte("line\n")))
	if !s.IsOpen() {
		t.Error("Slot should be open after Write")
	}
	mustNoError(t, "Close()", s.Close())
	if s.IsOpen() {
		t.Error("Slot should be closed after Close")
	}

	if got := readFile(t, path); got != "line\n" {
		t.Errorf("Content = %q, want %q", got, "line\n")
	}
}

func TestSlot_EnsureOpenIdempotent(t *testing.T) {
	s := NewSlot(filepath.Join(t.TempDir(), "test.txt"), Append)
	defer s.Close()

	opened, err := s.EnsureOpen()
	mustNoError(t, "EnsureOpen()", err)
	if !opened {
		t.Error("First EnsureOpen() should report an open")
	}

	opened, err = s.EnsureOpen()
	mustNoError(t, "EnsureOpen()", err)
	if opened {
		t.Error("Second EnsureOpen() should be a no-op")
	}

	if got := s.Stats().Opens; got != 1 {
		t.Errorf("Opens = %d, want 1", got)
	}
}

func TestSlot_CloseIdempotent(t *testing.T) {
	s := NewSlot(filepath.Join(t.TempDir(), "test.txt"), Append)

	mustNoError(t, "Close()", s.Close())
	mustNoError(t, "Write()", s.Write([]byte("x\n")))
	mustNoError(t, "Close()", s.Close())
	mustNoError(t, "Close()", s.Close())

	if got := s.Stats().Closes; got != 1 {
		t.Errorf("Closes = %d, want 1", got)
	}
}

func TestSlot_AppendKeepsContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	mustNoError(t, "WriteFile()", os.WriteFile(path, []byte("old\n"), 0644))

	s := NewSlot(path, Append)
	mustNoError(t, "WriteOnce()", s.WriteOnce([]byte("new\n")))

	if got := readFile(t, path); got != "old\nnew\n" {
		t.Errorf("Content = %q, want %q", got, "old\nnew\n")
	}
}

func TestSlot_TruncateOnlyOnFirstOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.txt")
	mustNoError(t, "WriteFile()", os.WriteFile(path, []byte("old\n"), 0644))

	s := NewSlot(path, Truncate)
	mustNoError(t, "WriteOnce()", s.WriteOnce([]byte("a\n")))
	mustNoError(t, "WriteOnce()", s.WriteOnce([]byte("b\n")))

	if got := readFile(t, path); got != "a\nb\n" {
		t.Errorf("Content = %q, want %q", got, "a\nb\n")
	}
	st := s.Stats()
	if st.Opens != 2 || st.Lines != 2 {
		t.Errorf("Stats = %+v, want 2 opens and 2 lines", st)
	}
}

func TestSlot_WriteOnceCloses(t *testing.T) {
	s := NewSlot(filepath.Join(t.TempDir(), "test.txt"), Append)

	mustNoError(t, "WriteOnce()", s.WriteOnce([]byte("x\n")))
	if s.IsOpen() {
		t.Error("WriteOnce() should leave the slot closed")
	}
	if got := s.Stats().Bytes; got != 2 {
		t.Errorf("Bytes = %d, want 2", got)
	}
}

func TestSlot_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "test.txt")
	s := NewSlot(path, Append)

	err := s.Write([]byte("x\n"))
	if err == nil {
		t.Fatal("Expected an error for a missing directory")
	}

	var openErr *FileOpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Expected *FileOpenError, got %T", err)
	}
	if openErr.Path != path {
		t.Errorf("Path = %q, want %q", openErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
	if s.IsOpen() {
		t.Error("Slot should stay closed after a failed open")
	}
}

func TestParseOpenMode(t *testing.T) {
	tests := []struct {
		in      string
		want    OpenMode
		wantErr bool
	}{
		{"", Append, false},
		{"append", Append, false},
		{"a", Append, false},
		{"truncate", Truncate, false},
		{"w", Truncate, false},
		{"rw", Append, true},
	}

	for _, tt := range tests {
		got, err := ParseOpenMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseOpenMode(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOpenMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOpenMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpenMode_String(t *testing.T) {
	tests := []struct {
		mode OpenMode
		want string
	}{
		{Append, "append"},
		{Truncate, "truncate"},
		{OpenMode(7), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("OpenMode(%d).String() = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
