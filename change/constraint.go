package change

// CreateConstraint adds a constraint using its captured definition text.
type CreateConstraint struct {
	ID         string
	Schema     string
	Table      string
	Name       string
	Definition string
}

func (c *CreateConstraint) StableID() string    { return c.ID }
func (c *CreateConstraint) Kind() Kind          { return KindConstraint }
func (c *CreateConstraint) Operation() Operation { return OpCreate }

// DropConstraint drops a constraint.
type DropConstraint struct {
	ID     string
	Schema string
	Table  string
	Name   string
}

func (d *DropConstraint) StableID() string    { return d.ID }
func (d *DropConstraint) Kind() Kind          { return KindConstraint }
func (d *DropConstraint) Operation() Operation { return OpDrop }

// AlterConstraint covers the narrow set of constraint properties Postgres
// allows to change in place: deferrability and validity (NOT VALID / VALIDATE
// CONSTRAINT). Anything else is a drop-then-create.
type AlterConstraint struct {
	ID                string
	Schema            string
	Table             string
	Name              string
	SetDeferrable     *bool
	SetInitiallyDeferred *bool
	Validate          bool
}

func (a *AlterConstraint) StableID() string    { return a.ID }
func (a *AlterConstraint) Kind() Kind          { return KindConstraint }
func (a *AlterConstraint) Operation() Operation { return OpAlter }
