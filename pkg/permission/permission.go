// Package permission holds the value types describing Oracle object
// privileges: which privileges, on which object, for which recipients.
package permission

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Select     Privilege = "SELECT"
	Update     Privilege = "UPDATE"
	Insert     Privilege = "INSERT"
	Delete     Privilege = "DELETE"
	Execute    Privilege = "EXECUTE"
	References Privilege = "REFERENCES"
	Index      Privilege = "INDEX"
)

type (
	// Privilege is an Oracle object privilege keyword.
	Privilege string

	// Set holds one flag per supported object privilege. The zero value has
	// no privileges selected.
	Set struct {
		Select     bool
		Update     bool
		Insert     bool
		Delete     bool
		Execute    bool
		References bool
		Index      bool
	}

	// Target identifies a schema object. An empty Schema leaves qualification
	// to the dialect.
	Target struct {
		Schema string
		Name   string
	}

	// RecipientList is the list of users and roles a statement applies to. It
	// is kept and emitted verbatim.
	RecipientList string
)

// Privileges returns every supported privilege in the order they appear in
// generated SQL.
func Privileges() []Privilege {
	return []Privilege{Select, Update, Insert, Delete, Execute, References, Index}
}

// ParsePrivilege converts a keyword (in any case) into a Privilege.
func ParsePrivilege(s string) (Privilege, error) {
	p := Privilege(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Privileges() {
		if p == known {
			return p, nil
		}
	}

	return "", errors.Errorf("unknown privilege: %q", s)
}

// All returns a Set with every privilege selected.
func All() Set {
	return Set{}.With(Privileges()...)
}

// Has reports whether p is selected.
func (s Set) Has(p Privilege) bool {
	switch p {
	case Select:
		return s.Select
	case Update:
		return s.Update
	case Insert:
		return s.Insert
	case Delete:
		return s.Delete
	case Execute:
		return s.Execute
	case References:
		return s.References
	case Index:
		return s.Index
	}
	return false
}

// With returns a copy of s with the given privileges selected. Unknown
// privileges are ignored.
func (s Set) With(privs ...Privilege) Set {
	for _, p := range privs {
		switch p {
		case Select:
			s.Select = true
		case Update:
			s.Update = true
		case Insert:
			s.Insert = true
		case Delete:
			s.Delete = true
		case Execute:
			s.Execute = true
		case References:
			s.References = true
		case Index:
			s.Index = true
		}
	}
	return s
}

// Granted returns the selected privileges in SQL order.
func (s Set) Granted() []Privilege {
	var out []Privilege
	for _, p := range Privileges() {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// IsEmpty reports whether no privilege is selected.
func (s Set) IsEmpty() bool {
	return len(s.Granted()) == 0
}

// String renders the selected privileges as a comma separated list.
func (s Set) String() string {
	granted := s.Granted()
	names := make([]string, len(granted))
	for i, p := range granted {
		names[i] = string(p)
	}
	return strings.Join(names, ",")
}

// String renders the target as schema.name, or just name when no schema is set.
func (t Target) String() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

func (r RecipientList) String() string {
	return string(r)
}
