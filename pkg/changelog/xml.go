package changelog

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/change"
)

// xmlNode is a generic element. Changes are decoded from their attributes so
// no per-change XML binding is needed.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

func (n xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func (p *Parser) parseXML(path string, r io.Reader) (*ChangeLog, error) {
	var root xmlNode
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, errors.Wrap(err, "failed to decode xml")
	}

	if root.XMLName.Local != "databaseChangeLog" {
		return nil, errors.Errorf("unexpected root element: %s", root.XMLName.Local)
	}

	cl := &ChangeLog{Path: path}
	for _, n := range root.Nodes {
		switch n.XMLName.Local {
		case "changeSet":
			cs, err := p.xmlChangeSet(path, n)
			if err != nil {
				return nil, err
			}
			cl.ChangeSets = append(cl.ChangeSets, cs)
		case "property", "preConditions":
			// not supported, ignored
		default:
			return nil, errors.Errorf("unsupported changelog element: %s", n.XMLName.Local)
		}
	}

	return cl, nil
}

func (p *Parser) xmlChangeSet(path string, n xmlNode) (*ChangeSet, error) {
	cs := &ChangeSet{
		ID:     n.attr("id"),
		Author: n.attr("author"),
		Path:   path,
	}

	contexts := n.attr("context")
	if contexts == "" {
		contexts = n.attr("contexts")
	}
	cs.Contexts = splitContexts(contexts)

	for _, child := range n.Nodes {
		switch child.XMLName.Local {
		case "comment":
			cs.Comment = strings.TrimSpace(child.Text)
		case "rollback", "preConditions", "validCheckSum":
			// rollback and checksums are not handled
		default:
			c, err := p.createChange(child.XMLName.Local, xmlAttributes(child))
			if err != nil {
				return nil, errors.Wrapf(err, "changeset %s", cs.Identifier())
			}
			cs.Changes = append(cs.Changes, c)
		}
	}

	return cs, nil
}

// xmlAttributes collects the element attributes, dropping namespace
// declarations. Non-blank text content is stored under "sql".
func xmlAttributes(n xmlNode) change.Attributes {
	attrs := make(change.Attributes, len(n.Attrs)+1)
	for _, a := range n.Attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}

	if text := strings.TrimSpace(n.Text); text != "" {
		attrs["sql"] = text
	}

	return attrs
}
