package loader

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Sections with a fixed structure. Every other top-level table in the file
// becomes a plain key/value namespace.
const (
	sectionLanguages = "languages"
	sectionContexts  = "contexts"
	sectionUsers     = "users"
)

// Language is one installed display language.
type Language struct {
	Code string
	Name string
}

// ContextDecl declares a context the service can resolve.
type ContextDecl struct {
	Type     string
	ID       int64
	Name     string
	MaxBytes int64
}

// UserDecl assigns a role to a user.
type UserDecl struct {
	ID   string
	Role string
}

// Document is the parsed settings file: the generic key/value namespaces
// plus the structured declarations the reference collaborators are built
// from. Slice ordering follows the order in the source file.
type Document struct {
	Namespaces map[string]map[string]string
	Languages  []Language
	Contexts   []ContextDecl
	Users      []UserDecl
}

// Validate checks the structural invariants of the document. Role names are
// not checked here; the identity package owns the role table.
func (d *Document) Validate() error {
	var errs []error

	langCodes := make(map[string]bool, len(d.Languages))
	for i, lang := range d.Languages {
		if lang.Code == "" {
			errs = append(errs, fmt.Errorf("%w: language at index %d", ErrEmptyID, i))
			continue
		}
		if langCodes[lang.Code] {
			errs = append(errs, fmt.Errorf("%w: '%s'", ErrDuplicateLanguage, lang.Code))
			continue
		}
		langCodes[lang.Code] = true
	}

	ctxKeys := make(map[string]bool, len(d.Contexts))
	for i, c := range d.Contexts {
		if c.Type == "" {
			errs = append(errs, fmt.Errorf("%w: context at index %d has no type", ErrMissingField, i))
			continue
		}
		if c.ID <= 0 {
			errs = append(errs, fmt.Errorf("%w: context '%s' at index %d", ErrInvalidContextID, c.Type, i))
			continue
		}
		key := c.Type + "/" + strconv.FormatInt(c.ID, 10)
		if ctxKeys[key] {
			errs = append(errs, fmt.Errorf("%w: %s %d", ErrDuplicateContext, c.Type, c.ID))
			continue
		}
		ctxKeys[key] = true
	}

	userIDs := make(map[string]bool, len(d.Users))
	for i, u := range d.Users {
		if u.ID == "" {
			errs = append(errs, fmt.Errorf("%w: user at index %d", ErrEmptyID, i))
			continue
		}
		if userIDs[u.ID] {
			errs = append(errs, fmt.Errorf("%w: '%s'", ErrDuplicateUser, u.ID))
			continue
		}
		userIDs[u.ID] = true
	}

	return errors.Join(errs...)
}

// fromRaw converts the generic map produced by the TOML or YAML parser into
// a Document. Scalar namespace values are coerced to strings since the
// store contract is string-valued.
func fromRaw(raw map[string]any) (*Document, error) {
	doc := &Document{
		Namespaces: make(map[string]map[string]string),
	}

	var errs []error

	// Deterministic error ordering for map iteration.
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		switch key {
		case sectionLanguages:
			langs, err := parseLanguages(value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			doc.Languages = langs
		case sectionContexts:
			ctxs, err := parseContexts(value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			doc.Contexts = ctxs
		case sectionUsers:
			users, err := parseUsers(value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			doc.Users = users
		default:
			ns, err := parseNamespace(key, value)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			doc.Namespaces[key] = ns
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseNamespace(name string, value any) (map[string]string, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: section '%s' is not a table", ErrInvalidValue, name)
	}

	ns := make(map[string]string, len(table))
	for k, v := range table {
		s, err := coerceString(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s", err, name, k)
		}
		ns[k] = s
	}
	return ns, nil
}

func parseLanguages(value any) ([]Language, error) {
	rows, err := tableRows(sectionLanguages, value)
	if err != nil {
		return nil, err
	}

	langs := make([]Language, 0, len(rows))
	for _, row := range rows {
		langs = append(langs, Language{
			Code: stringField(row, "code"),
			Name: stringField(row, "name"),
		})
	}
	return langs, nil
}

func parseContexts(value any) ([]ContextDecl, error) {
	rows, err := tableRows(sectionContexts, value)
	if err != nil {
		return nil, err
	}

	ctxs := make([]ContextDecl, 0, len(rows))
	for _, row := range rows {
		ctxs = append(ctxs, ContextDecl{
			Type:     stringField(row, "type"),
			ID:       intField(row, "id"),
			Name:     stringField(row, "name"),
			MaxBytes: intField(row, "maxbytes"),
		})
	}
	return ctxs, nil
}

func parseUsers(value any) ([]UserDecl, error) {
	rows, err := tableRows(sectionUsers, value)
	if err != nil {
		return nil, err
	}

	users := make([]UserDecl, 0, len(rows))
	for _, row := range rows {
		users = append(users, UserDecl{
			ID:   stringField(row, "id"),
			Role: stringField(row, "role"),
		})
	}
	return users, nil
}

func tableRows(section string, value any) ([]map[string]any, error) {
	list, ok := value.([]any)
	if !ok {
		// pelletier/go-toml decodes [[x]] as []map[string]any
		if typed, ok := value.([]map[string]any); ok {
			return typed, nil
		}
		return nil, fmt.Errorf("%w: section '%s' is not an array of tables", ErrInvalidValue, section)
	}

	rows := make([]map[string]any, 0, len(list))
	for i, item := range list {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d in section '%s'", ErrInvalidValue, i, section)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func stringField(row map[string]any, key string) string {
	v, ok := row[key]
	if !ok {
		return ""
	}
	s, err := coerceString(v)
	if err != nil {
		return ""
	}
	return s
}

func intField(row map[string]any, key string) int64 {
	switch v := row[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func coerceString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}
