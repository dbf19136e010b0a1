package charset_test

import (
	"strings"
	"testing"

	"github.com/benbjohnson/css/charset"
)

func TestDecode_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a { color: red }")...)
	r, err := charset.Decode(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != charset.SourceBOM || r.Name != "utf-8" {
		t.Fatalf("got source=%v name=%q", r.Source, r.Name)
	}
	if r.Text != "a { color: red }" {
		t.Fatalf("unexpected text: %q", r.Text)
	}
}

func TestDecode_CharsetRule(t *testing.T) {
	data := []byte(`@charset "utf-8";a{color:red}`)
	r, err := charset.Decode(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != charset.SourceRule {
		t.Fatalf("expected rule source, got %v", r.Source)
	}
}

func TestDecode_Fallback(t *testing.T) {
	data := []byte("a{color:red}")
	r, err := charset.Decode(data, "iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != charset.SourceFallback || r.Name != "iso-8859-1" {
		t.Fatalf("got source=%v name=%q", r.Source, r.Name)
	}
}

func TestDecode_Default(t *testing.T) {
	r, err := charset.Decode([]byte("a{color:red}"), "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != charset.SourceDefault || r.Name != charset.DefaultCharset {
		t.Fatalf("got source=%v name=%q", r.Source, r.Name)
	}
}

func TestDecode_CharsetRuleUTF16CollapsesToUTF8(t *testing.T) {
	for _, name := range []string{"utf-16be", "utf-16le", "UTF-16BE"} {
		data := []byte(`@charset "` + name + `";a{color:red}`)
		r, err := charset.Decode(data, "")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if r.Source != charset.SourceRule {
			t.Fatalf("%s: expected rule source, got %v", name, r.Source)
		}
		want := `@charset "` + name + `";a{color:red}`
		if r.Text != want {
			t.Fatalf("%s: expected the rule bytes to be read back as UTF-8 text, got %q", name, r.Text)
		}
	}
}

func TestDecode_BOMStillHonorsUTF16(t *testing.T) {
	// A genuine UTF-16BE BOM is not rule-supplied, so it must not be
	// canonicalized away — only an @charset rule's own claim collapses.
	data := append([]byte{0xFE, 0xFF}, utf16be("a{}")...)
	r, err := charset.Decode(data, "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Source != charset.SourceBOM || r.Name != "utf-16be" {
		t.Fatalf("got source=%v name=%q", r.Source, r.Name)
	}
	if r.Text != "a{}" {
		t.Fatalf("unexpected text: %q", r.Text)
	}
}

// utf16be encodes s as big-endian UTF-16 bytes (ASCII-only input assumed).
func utf16be(s string) []byte {
	out := make([]byte, 0, len(s)*2)
	for _, r := range s {
		out = append(out, byte(r>>8), byte(r))
	}
	return out
}

func TestDecode_UnknownCharset(t *testing.T) {
	data := []byte(`@charset "bogus-encoding-name";a{}`)
	_, err := charset.Decode(data, "")
	if err == nil {
		t.Fatal("expected error for unknown charset name")
	}
}

func TestDecode_PreprocessesLineEndings(t *testing.T) {
	r, err := charset.Decode([]byte("a\r\nb\rc\fd\x00e"), "")
	if err != nil {
		t.Fatal(err)
	}
	if strings.ContainsAny(r.Text, "\r\f\x00") {
		t.Fatalf("line endings/NUL not normalized: %q", r.Text)
	}
	if r.Text != "a\nb\nc\nd�e" {
		t.Fatalf("unexpected normalized text: %q", r.Text)
	}
}

func TestReader(t *testing.T) {
	r, err := charset.Reader(strings.NewReader("a{color:red}"), "")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "a{color:red}" {
		t.Fatalf("unexpected text: %q", r.Text)
	}
}
