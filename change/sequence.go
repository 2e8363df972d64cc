package change

// CreateSequence creates a standalone sequence.
type CreateSequence struct {
	ID         string
	Schema     string
	Name       string
	DataType   string
	StartValue int64
	Increment  int64
	MinValue   *int64
	MaxValue   *int64
	Cycle      bool
	CacheSize  int64
}

func (c *CreateSequence) StableID() string    { return c.ID }
func (c *CreateSequence) Kind() Kind          { return KindSequence }
func (c *CreateSequence) Operation() Operation { return OpCreate }

// DropSequence drops a sequence.
type DropSequence struct {
	ID     string
	Schema string
	Name   string
}

func (d *DropSequence) StableID() string    { return d.ID }
func (d *DropSequence) Kind() Kind          { return KindSequence }
func (d *DropSequence) Operation() Operation { return OpDrop }

// AlterSequence changes in-place-alterable sequence properties.
type AlterSequence struct {
	ID           string
	Schema       string
	Name         string
	Increment    *int64
	MinValue     *int64
	MaxValue     *int64
	Cycle        *bool
	CacheSize    *int64
	RestartValue *int64
}

func (a *AlterSequence) StableID() string    { return a.ID }
func (a *AlterSequence) Kind() Kind          { return KindSequence }
func (a *AlterSequence) Operation() Operation { return OpAlter }

// SetSequenceOwner links a sequence to the column it backs via
// ALTER SEQUENCE ... OWNED BY. It carries the sequence's own stable_id so the
// resolver's same-object priority rule orders it after CreateSequence, and
// the dependency graph's sequence-owns-table edge orders it after the owning
// table is created.
type SetSequenceOwner struct {
	ID            string
	Schema        string
	Name          string
	OwnedByTable  string
	OwnedByColumn string
}

func (a *SetSequenceOwner) StableID() string     { return a.ID }
func (a *SetSequenceOwner) Kind() Kind           { return KindSequence }
func (a *SetSequenceOwner) Operation() Operation { return OpAlter }
