package pretty

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqalign/core/align"
)

func writeIfMissingOrUpdate(path string, got string) (created bool, err error) {
	// Ensure the testdata directory exists before writing.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, err
	}
	// Allow updating goldens explicitly.
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	// First-run: create golden if missing.
	if _, e := os.Stat(path); os.IsNotExist(e) {
		return true, os.WriteFile(path, []byte(got), 0644)
	}
	return false, nil
}

func mustRead(path string, t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v", path, err)
	}
	return string(b)
}

func TestRenderAlignment_SingleBlock(t *testing.T) {
	al := align.Align("ACGT", "AGT")
	got := RenderAlignment(al, Options{Width: 4, CounterWidth: 3})
	want := "   0 ACGT 4\n" +
		"     | ||\n" +
		"     A-GT\n"
	assert.Equal(t, want, got)
}

func TestRenderAlignment_PadsLastBlock(t *testing.T) {
	al := align.Align("ACGT", "AGT")
	got := RenderAlignment(al, Options{Width: 6, CounterWidth: 1})
	assert.Equal(t, " 0 ACGT   4\n   | ||\n   A-GT\n", got)
}

func TestRenderAlignment_MultipleBlocks(t *testing.T) {
	al := align.Align("ACGT", "AGT")
	got := RenderAlignment(al, Options{Width: 2, CounterWidth: 2})
	want := "  0 AC 2\n" +
		"    | \n" +
		"    A-\n" +
		"\n" +
		"  2 GT 4\n" +
		"    ||\n" +
		"    GT\n"
	assert.Equal(t, want, got)
}

func TestRenderAlignment_Empty(t *testing.T) {
	assert.Empty(t, RenderAlignment(align.Align("", ""), DefaultOptions))
}

func TestRenderAlignment_ColorKeepsResidues(t *testing.T) {
	al := align.Align("ACGTTA", "AGTCA")
	plain := RenderAlignment(al, DefaultOptions)
	colored := RenderAlignment(al, Options{Color: true})
	require.NotEqual(t, plain, colored)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, stripANSI(colored))
}

func TestRenderSummary(t *testing.T) {
	got := RenderSummary("q", "t", 3, align.Align("ACGT", "AGT"))
	assert.Equal(t, "# q vs t  length=3bp  distance=1  identity=75.0%  (match=3 sub=0 ins=0 del=1)\n", got)
}

func TestRenderAlignment_DefaultWidth_Golden(t *testing.T) {
	a := strings.Repeat("ACGTTGCA", 10)
	b := strings.Repeat("ACGTGCA", 11)
	got := RenderAlignment(align.Align(a, b), DefaultOptions)
	path := filepath.Join("testdata", "default_width.golden")
	if created, err := writeIfMissingOrUpdate(path, got); err != nil {
		t.Fatalf("write golden: %v", err)
	} else if created {
		t.Logf("wrote %s", path)
		return
	}
	want := mustRead(path, t)
	if got != want {
		t.Fatalf("mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
