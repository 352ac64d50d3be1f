package dialect

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/orakeeper/pkg/consts"
	"github.com/pseudomuto/orakeeper/pkg/utils"
)

const (
	// QuotingLegacy quotes reserved words and names that are not plain
	// identifiers. Everything else is emitted as written.
	QuotingLegacy Quoting = "legacy"

	// QuotingAll quotes every identifier.
	QuotingAll Quoting = "quote_all"

	// QuotingReserved only quotes reserved words.
	QuotingReserved Quoting = "quote_reserved"
)

// oracleReservedWords are the entries of V$RESERVED_WORDS flagged RESERVED.
var oracleReservedWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		ACCESS ADD ALL ALTER AND ANY AS ASC AUDIT BETWEEN BY CHAR CHECK CLUSTER
		COLUMN COMMENT COMPRESS CONNECT CREATE CURRENT DATE DECIMAL DEFAULT DELETE
		DESC DISTINCT DROP ELSE EXCLUSIVE EXISTS FILE FLOAT FOR FROM GRANT GROUP
		HAVING IDENTIFIED IMMEDIATE IN INCREMENT INDEX INITIAL INSERT INTEGER
		INTERSECT INTO IS LEVEL LIKE LOCK LONG MAXEXTENTS MINUS MLSLABEL MODE
		MODIFY NOAUDIT NOCOMPRESS NOT NOWAIT NULL NUMBER OF OFFLINE ON ONLINE
		OPTION OR ORDER PCTFREE PRIOR PUBLIC RAW RENAME RESOURCE REVOKE ROW ROWID
		ROWNUM ROWS SELECT SESSION SET SHARE SIZE SMALLINT START SUCCESSFUL
		SYNONYM SYSDATE TABLE THEN TO TRIGGER UID UNION UNIQUE UPDATE USER
		VALIDATE VALUES VARCHAR VARCHAR2 VIEW WHENEVER WHERE WITH
	`) {
		oracleReservedWords[w] = struct{}{}
	}
}

type (
	// Quoting selects when identifiers are wrapped in double quotes.
	Quoting string

	// OracleOptions configures the Oracle dialect.
	OracleOptions struct {
		// Quoting is the identifier quoting strategy (defaults to QuotingLegacy).
		Quoting Quoting

		// DefaultSchema qualifies unqualified names when IncludeDefaultSchema
		// is set.
		DefaultSchema string

		// IncludeDefaultSchema prefixes unqualified names with DefaultSchema.
		IncludeDefaultSchema bool
	}

	// Oracle implements Dialect for Oracle Database.
	//
	// Oracle has no catalog layer distinct from schemas, so a catalog passed
	// to EscapeObjectName is used as the schema when no schema is given.
	Oracle struct {
		opts OracleOptions
	}
)

// NewOracle creates an Oracle dialect. An unknown quoting strategy is an error.
//
// Example:
//
//	ora, err := dialect.NewOracle(dialect.OracleOptions{Quoting: dialect.QuotingAll})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	name, _ := ora.EscapeObjectName("", "hr", "employees")
//	// "hr"."employees"
func NewOracle(opts OracleOptions) (*Oracle, error) {
	if opts.Quoting == "" {
		opts.Quoting = QuotingLegacy
	}

	switch opts.Quoting {
	case QuotingLegacy, QuotingAll, QuotingReserved:
	default:
		return nil, errors.Errorf("unknown quoting strategy: %s", opts.Quoting)
	}

	return &Oracle{opts: opts}, nil
}

// Name returns the dialect name.
func (o *Oracle) Name() string {
	return "oracle"
}

// EscapeObjectName returns the escaped, optionally schema-qualified name.
func (o *Oracle) EscapeObjectName(catalog, schema, name string) (string, error) {
	if schema == "" {
		schema = catalog
	}
	if schema == "" && o.opts.IncludeDefaultSchema {
		schema = o.opts.DefaultSchema
	}

	escapedName, err := o.EscapeIdentifier(name)
	if err != nil {
		return "", err
	}

	if schema == "" {
		return escapedName, nil
	}

	escapedSchema, err := o.EscapeIdentifier(schema)
	if err != nil {
		return "", err
	}

	return escapedSchema + "." + escapedName, nil
}

// EscapeIdentifier escapes a single identifier according to the configured
// quoting strategy. Identifiers that are already quoted are returned as-is.
func (o *Oracle) EscapeIdentifier(name string) (string, error) {
	if name == "" {
		return "", ErrEmptyIdentifier
	}

	if raw := utils.StripQuotes(name); len(raw) > consts.MaxIdentifierLength {
		return "", errors.Wrapf(ErrIdentifierTooLong, "%s is %d bytes (max %d)", name, len(raw), consts.MaxIdentifierLength)
	}

	if utils.IsQuoted(name) {
		return name, nil
	}

	switch o.opts.Quoting {
	case QuotingAll:
		return utils.QuoteIdentifier(name), nil
	case QuotingReserved:
		if IsOracleReservedWord(name) {
			return utils.QuoteIdentifier(name), nil
		}
	default:
		if IsOracleReservedWord(name) || !utils.IsSimpleIdentifier(name) {
			return utils.QuoteIdentifier(name), nil
		}
	}

	return name, nil
}

// IsOracleReservedWord reports whether word (in any case) is reserved.
func IsOracleReservedWord(word string) bool {
	_, ok := oracleReservedWords[strings.ToUpper(word)]
	return ok
}
