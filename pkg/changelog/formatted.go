package changelog

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
	"github.com/pseudomuto/orakeeper/pkg/permission"
	"github.com/pseudomuto/orakeeper/pkg/sqlgen"
)

const (
	formattedHeader    = "--liquibase formatted sql"
	formattedChangeSet = "--changeset "
	formattedComment   = "--comment:"
	formattedRollback  = "--rollback"
)

var revokeParser = participle.MustBuild[revokeStmt](
	participle.Lexer(sqlgen.Lexer),
	participle.Elide("Comment", "MultilineComment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// revokeStmt is an object privilege revoke.
// Syntax: REVOKE priv [,...] ON [schema.]object FROM grantee [,...]
type revokeStmt struct {
	Privileges []string          `parser:"'REVOKE' @Ident (',' @Ident)*"`
	Object     []string          `parser:"'ON' @(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))?"`
	Recipients *revokeRecipients `parser:"'FROM' @@"`
}

// revokeRecipients keeps the tokens of the FROM clause so the grantee list
// can be recovered exactly as written.
type revokeRecipients struct {
	Pos    lexer.Position
	Tokens []lexer.Token

	Names []string `parser:"@(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))*"`
}

// text returns the FROM clause of stmt without trailing comments or
// whitespace.
func (r *revokeRecipients) text(stmt string) string {
	symbols := sqlgen.Lexer.Symbols()
	end := r.Pos.Offset
	for _, tok := range r.Tokens {
		switch tok.Type {
		case symbols["Whitespace"], symbols["Comment"], symbols["MultilineComment"]:
			continue
		}
		if e := tok.Pos.Offset + len(tok.Value); e > end {
			end = e
		}
	}

	return stmt[r.Pos.Offset:end]
}

// attributes returns the revokeObjectPermission attributes of the statement
// parsed from stmt. It reports false when a privilege is not an object
// privilege the change type can express.
func (s *revokeStmt) attributes(stmt string) (change.Attributes, bool) {
	attrs := change.Attributes{
		"objectName":    s.Object[len(s.Object)-1],
		"recipientList": s.Recipients.text(stmt),
	}
	if len(s.Object) == 2 {
		attrs["schemaName"] = s.Object[0]
	}

	for _, name := range s.Privileges {
		p, err := permission.ParsePrivilege(name)
		if err != nil {
			return nil, false
		}
		attrs[strings.ToLower(string(p))] = "true"
	}

	return attrs, true
}

type formattedChangeSetHeader struct {
	cs           *ChangeSet
	line         int
	split        bool
	endDelimiter string
	body         strings.Builder
}

func (p *Parser) parseFormattedSQL(path string, r io.Reader) (*ChangeLog, error) {
	var (
		cl      = &ChangeLog{Path: path}
		current *formattedChangeSetHeader
		headers []*formattedChangeSetHeader
		sawHead bool
		lineNo  int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if !sawHead {
			if trimmed == "" {
				continue
			}
			if !strings.EqualFold(trimmed, formattedHeader) {
				return nil, errors.Errorf("line %d: expected %q header", lineNo, formattedHeader)
			}
			sawHead = true
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, formattedChangeSet):
			hdr, err := parseChangeSetHeader(path, strings.TrimPrefix(trimmed, formattedChangeSet))
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			hdr.line = lineNo
			headers = append(headers, hdr)
			current = hdr
		case strings.HasPrefix(trimmed, formattedComment):
			if current != nil {
				current.cs.Comment = strings.TrimSpace(strings.TrimPrefix(trimmed, formattedComment))
			}
		case strings.HasPrefix(trimmed, formattedRollback):
			// rollback blocks are not handled
		default:
			if current == nil {
				if trimmed != "" && !strings.HasPrefix(trimmed, "--") {
					return nil, errors.Errorf("line %d: sql outside of a changeset", lineNo)
				}
				continue
			}
			current.body.WriteString(line)
			current.body.WriteByte('\n')
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read formatted sql")
	}

	if !sawHead {
		return nil, errors.Errorf("missing %q header", formattedHeader)
	}

	for _, hdr := range headers {
		changes, err := p.formattedChanges(hdr)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: changeset %s", hdr.line, hdr.cs.Identifier())
		}
		hdr.cs.Changes = changes
		cl.ChangeSets = append(cl.ChangeSets, hdr.cs)
	}

	return cl, nil
}

// parseChangeSetHeader parses "author:id [key:value ...]".
func parseChangeSetHeader(path, s string) (*formattedChangeSetHeader, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("changeset requires author:id")
	}

	author, id, ok := strings.Cut(fields[0], ":")
	if !ok {
		return nil, errors.Errorf("invalid changeset identifier: %s", fields[0])
	}

	hdr := &formattedChangeSetHeader{
		cs:    &ChangeSet{ID: id, Author: author, Path: path},
		split: true,
	}

	for _, opt := range fields[1:] {
		key, value, ok := strings.Cut(opt, ":")
		if !ok {
			return nil, errors.Errorf("invalid changeset option: %s", opt)
		}

		switch key {
		case "context", "contexts":
			hdr.cs.Contexts = splitContexts(value)
		case "splitStatements":
			split, err := change.Attributes{key: value}.Bool(key)
			if err != nil {
				return nil, err
			}
			hdr.split = split
		case "endDelimiter":
			hdr.endDelimiter = value
		default:
			return nil, errors.Errorf("unsupported changeset option: %s", key)
		}
	}

	return hdr, nil
}

// formattedChanges turns a changeset body into changes. With the default
// delimiter every statement is checked against the REVOKE grammar; anything
// else runs as plain SQL.
func (p *Parser) formattedChanges(hdr *formattedChangeSetHeader) ([]change.Change, error) {
	body := hdr.body.String()
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}

	if !hdr.split || (hdr.endDelimiter != "" && hdr.endDelimiter != ";") {
		c, err := p.createChange(string(change.KindSQL), change.Attributes{
			"sql":             strings.TrimSpace(body),
			"splitStatements": strconv.FormatBool(hdr.split),
			"endDelimiter":    hdr.endDelimiter,
		})
		if err != nil {
			return nil, err
		}
		return []change.Change{c}, nil
	}

	stmts, err := sqlgen.Split(body)
	if err != nil {
		return nil, err
	}

	changes := make([]change.Change, 0, len(stmts))
	for _, stmt := range stmts {
		c, err := p.formattedChange(stmt)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}

	return changes, nil
}

func (p *Parser) formattedChange(stmt string) (change.Change, error) {
	if revoke, err := revokeParser.ParseString("", stmt); err == nil {
		if attrs, ok := revoke.attributes(stmt); ok {
			return p.createChange(string(change.KindRevokeObjectPermission), attrs)
		}
	}

	return p.createChange(string(change.KindSQL), change.Attributes{
		"sql":             stmt,
		"splitStatements": "false",
	})
}
