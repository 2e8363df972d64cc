package change

// CreateType creates an enum, composite, or domain type. Definition is the
// full CREATE TYPE / CREATE DOMAIN statement text.
type CreateType struct {
	ID         string
	Schema     string
	Name       string
	Definition string
}

func (c *CreateType) StableID() string    { return c.ID }
func (c *CreateType) Kind() Kind          { return KindType }
func (c *CreateType) Operation() Operation { return OpCreate }

// DropType drops a type.
type DropType struct {
	ID     string
	Schema string
	Name   string
}

func (d *DropType) StableID() string    { return d.ID }
func (d *DropType) Kind() Kind          { return KindType }
func (d *DropType) Operation() Operation { return OpDrop }

// AlterTypeAddValue appends one label to an enum via ALTER TYPE ... ADD
// VALUE. Postgres allows only one label per statement in a transaction-safe
// way pre-12; the differ emits one of these per added label, in order.
type AlterTypeAddValue struct {
	ID     string
	Schema string
	Name   string
	Value  string
	After  string // previous label to position after; empty means append at end
}

func (a *AlterTypeAddValue) StableID() string    { return a.ID }
func (a *AlterTypeAddValue) Kind() Kind          { return KindType }
func (a *AlterTypeAddValue) Operation() Operation { return OpAlter }
