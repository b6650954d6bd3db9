package wheel

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"
)

func TestReadLabels(t *testing.T) {
	got, err := ReadLabels(strings.NewReader("alpha\r\nbeta  \n\n gamma\t\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"alpha", "beta", "", " gamma"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLabels = %q, want %q", got, want)
	}
}

func TestReadLabelsCapsAtMax(t *testing.T) {
	src := strings.Repeat("x\n", MaxSegments+7)
	got, err := ReadLabels(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxSegments {
		t.Errorf("len = %d, want %d", len(got), MaxSegments)
	}
}

func TestReadLabelsLongLine(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	got, err := ReadLabels(strings.NewReader(long + "\nb\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != long || got[1] != "b" {
		t.Errorf("ReadLabels returned %d labels, want the long line and %q", len(got), "b")
	}
}

func TestReadLabelsErrors(t *testing.T) {
	if _, err := ReadLabels(strings.NewReader("")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty source error = %v, want ErrInvalidInput", err)
	}
	broken := iotest.ErrReader(errors.New("disk on fire"))
	if _, err := ReadLabels(broken); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("broken source error = %v, want ErrInvalidInput", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	if err := os.WriteFile(path, []byte("Ann\nBob\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"Ann", "Bob"}) {
		t.Errorf("LoadFile = %q", got)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing file error = %v, want ErrInvalidInput", err)
	}
}
