package change

// CreatePolicy creates a row-level security policy.
type CreatePolicy struct {
	ID         string
	Schema     string
	Table      string
	Name       string
	Command    string
	Permissive bool
	Roles      []string
	UsingExpr  string
	CheckExpr  string
}

func (c *CreatePolicy) StableID() string    { return c.ID }
func (c *CreatePolicy) Kind() Kind          { return KindPolicy }
func (c *CreatePolicy) Operation() Operation { return OpCreate }

// DropPolicy drops a policy.
type DropPolicy struct {
	ID     string
	Schema string
	Table  string
	Name   string
}

func (d *DropPolicy) StableID() string    { return d.ID }
func (d *DropPolicy) Kind() Kind          { return KindPolicy }
func (d *DropPolicy) Operation() Operation { return OpDrop }

// AlterPolicy changes a policy's roles or expressions in place via ALTER
// POLICY. Command and Permissive have no ALTER path and force drop-then-
// create instead.
type AlterPolicy struct {
	ID        string
	Schema    string
	Table     string
	Name      string
	Roles     []string
	UsingExpr string
	CheckExpr string
}

func (a *AlterPolicy) StableID() string    { return a.ID }
func (a *AlterPolicy) Kind() Kind          { return KindPolicy }
func (a *AlterPolicy) Operation() Operation { return OpAlter }
