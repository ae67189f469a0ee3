package book

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"github.com/rcliao/addressbook/internal/model"
)

type tuple struct {
	name     string
	phones   string
	birthday string
}

func tuples(b *Book) []tuple {
	var out []tuple
	for _, r := range b.Records() {
		bd, _ := r.Birthday()
		out = append(out, tuple{r.Name(), strings.Join(r.Phones(), ","), bd})
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string][]*model.Record{
		"empty": nil,
		"one":   {newRecord(t, "Alex", "", "1111111111")},
		"many": {
			newRecord(t, "Alex", "", "1111111111"),
			newRecord(t, "Bo", "29-02-2020", "2222222222", "3333333333", "2222222222"),
			newRecord(t, "Cy \"quoted\"", "01-01-1990"),
			newRecord(t, "Dee", ""),
		},
	}
	for name, rs := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			orig := New(rs...)
			be.Err(t, orig.Save(path), nil)

			loaded := New()
			found, err := loaded.Load(path)
			be.Err(t, err, nil)
			be.True(t, found)
			be.Equal(t, tuples(loaded), tuples(orig))
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	be.Err(t, New(newRecord(t, "Alex", "")).Save(path), nil)
	be.Err(t, New(newRecord(t, "Bo", "")).Save(path), nil)

	b := New()
	_, err := b.Load(path)
	be.Err(t, err, nil)
	be.Equal(t, names(b.Records()), []string{"Bo"})
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "data.json")
	be.Err(t, New().Save(path), nil)
	_, err := os.Stat(path)
	be.Err(t, err, nil)
}

func TestLoadMissingFile(t *testing.T) {
	b := New()
	found, err := b.Load(filepath.Join(t.TempDir(), "nope.json"))
	be.Err(t, err, nil)
	be.True(t, !found)
	be.Equal(t, b.Len(), 0)
}

func TestLoadReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	be.Err(t, New(newRecord(t, "Alex", "")).Save(path), nil)

	b := New(newRecord(t, "Old", ""))
	_, err := b.Load(path)
	be.Err(t, err, nil)
	be.Equal(t, names(b.Records()), []string{"Alex"})
}

func TestLoadFailures(t *testing.T) {
	cases := []struct {
		name    string
		content string
		kind    model.ErrorKind
	}{
		{"malformed", `{"Alex": {"name": "Alex", "phones": [`, model.KindIOFailure},
		{"not an object", `["Alex"]`, model.KindIOFailure},
		{"empty", ``, model.KindIOFailure},
		{"trailing data", `{"Alex": {"name": "Alex", "phones": ["1111111111"]}} }garbage{`, model.KindIOFailure},
		{"second object", `{} {}`, model.KindIOFailure},
		{"bad phone", `{"Alex": {"name": "Alex", "phones": ["123"]}}`, model.KindInvalidValue},
		{"bad birthday", `{"Alex": {"name": "Alex", "phones": [], "birthday": "31-02-2000"}}`, model.KindInvalidValue},
		{"duplicate name", `{"a": {"name": "Alex", "phones": []}, "b": {"name": "Alex", "phones": []}}`, model.KindDuplicateName},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.json")
			be.Err(t, os.WriteFile(path, []byte(c.content), 0o600), nil)

			b := New(newRecord(t, "Keep", ""))
			found, err := b.Load(path)
			be.True(t, found)
			be.Equal(t, model.KindOf(err), c.kind)
			be.Equal(t, names(b.Records()), []string{"Keep"})
		})
	}
}

func TestDecodeUsesKeyWhenNameMissing(t *testing.T) {
	rs, err := Decode(strings.NewReader(`{"Alex": {"phones": ["1111111111"]}}`))
	be.Err(t, err, nil)
	be.Equal(t, len(rs), 1)
	be.Equal(t, rs[0].Name(), "Alex")
	be.Equal(t, rs[0].Phones(), []string{"1111111111"})
}

func TestEncodeShape(t *testing.T) {
	var sb strings.Builder
	be.Err(t, New(newRecord(t, "Alex", "01-02-2000", "1111111111"), newRecord(t, "Bo", "")).Encode(&sb), nil)
	out := sb.String()
	be.True(t, strings.Index(out, `"Alex"`) < strings.Index(out, `"Bo"`))
	be.True(t, strings.Contains(out, `"birthday": "01-02-2000"`))
	be.Equal(t, strings.Count(out, `"birthday"`), 1)
}
