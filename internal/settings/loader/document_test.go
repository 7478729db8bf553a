package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Validate(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		wantErrs []error
	}{
		{
			name: "empty document is valid",
			doc:  Document{},
		},
		{
			name: "well-formed document",
			doc: Document{
				Languages: []Language{{Code: "en", Name: "English"}},
				Contexts:  []ContextDecl{{Type: "course", ID: 1}},
				Users:     []UserDecl{{ID: "u1", Role: "student"}},
			},
		},
		{
			name: "empty language code",
			doc: Document{
				Languages: []Language{{Code: "", Name: "Mystery"}},
			},
			wantErrs: []error{ErrEmptyID},
		},
		{
			name: "duplicate language code",
			doc: Document{
				Languages: []Language{{Code: "en"}, {Code: "en"}},
			},
			wantErrs: []error{ErrDuplicateLanguage},
		},
		{
			name: "context without type",
			doc: Document{
				Contexts: []ContextDecl{{Type: "", ID: 1}},
			},
			wantErrs: []error{ErrMissingField},
		},
		{
			name: "context with non-positive id",
			doc: Document{
				Contexts: []ContextDecl{{Type: "course", ID: 0}},
			},
			wantErrs: []error{ErrInvalidContextID},
		},
		{
			name: "duplicate context",
			doc: Document{
				Contexts: []ContextDecl{
					{Type: "course", ID: 1},
					{Type: "course", ID: 1},
				},
			},
			wantErrs: []error{ErrDuplicateContext},
		},
		{
			name: "same id in different types is fine",
			doc: Document{
				Contexts: []ContextDecl{
					{Type: "course", ID: 1},
					{Type: "module", ID: 1},
				},
			},
		},
		{
			name: "empty user id",
			doc: Document{
				Users: []UserDecl{{ID: "", Role: "student"}},
			},
			wantErrs: []error{ErrEmptyID},
		},
		{
			name: "duplicate user id",
			doc: Document{
				Users: []UserDecl{{ID: "u1", Role: "student"}, {ID: "u1", Role: "guest"}},
			},
			wantErrs: []error{ErrDuplicateUser},
		},
		{
			name: "all failures joined",
			doc: Document{
				Languages: []Language{{Code: ""}},
				Contexts:  []ContextDecl{{Type: "course", ID: -1}},
				Users:     []UserDecl{{ID: "u1"}, {ID: "u1"}},
			},
			wantErrs: []error{ErrEmptyID, ErrInvalidContextID, ErrDuplicateUser},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestFromRaw_ValueCoercion(t *testing.T) {
	doc, err := fromRaw(map[string]any{
		"editor": map[string]any{
			"flag_on":  true,
			"flag_off": false,
			"count":    int64(12),
			"small":    7,
			"ratio":    1.5,
			"text":     "plain",
		},
	})
	require.NoError(t, err)

	ns := doc.Namespaces["editor"]
	assert.Equal(t, "1", ns["flag_on"])
	assert.Equal(t, "0", ns["flag_off"])
	assert.Equal(t, "12", ns["count"])
	assert.Equal(t, "7", ns["small"])
	assert.Equal(t, "1.5", ns["ratio"])
	assert.Equal(t, "plain", ns["text"])
}

func TestFromRaw_RejectsUnsupportedValues(t *testing.T) {
	_, err := fromRaw(map[string]any{
		"editor": map[string]any{
			"nested": map[string]any{"too": "deep"},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "editor.nested")
}

func TestFromRaw_RejectsScalarSections(t *testing.T) {
	_, err := fromRaw(map[string]any{
		"editor": "not a table",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestFromRaw_ReservedSections(t *testing.T) {
	doc, err := fromRaw(map[string]any{
		"languages": []any{
			map[string]any{"code": "en", "name": "English"},
		},
		"contexts": []any{
			map[string]any{"type": "course", "id": int64(3), "maxbytes": "1024"},
		},
		"users": []any{
			map[string]any{"id": "u1", "role": "manager"},
		},
	})
	require.NoError(t, err)

	assert.Empty(t, doc.Namespaces, "reserved sections never become namespaces")
	require.Len(t, doc.Languages, 1)
	require.Len(t, doc.Contexts, 1)
	assert.Equal(t, int64(1024), doc.Contexts[0].MaxBytes, "numeric strings parse in int fields")
	require.Len(t, doc.Users, 1)
}

func TestFromRaw_RejectsMalformedReservedSections(t *testing.T) {
	_, err := fromRaw(map[string]any{
		"languages": "english",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = fromRaw(map[string]any{
		"users": []any{"not-a-table"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}
