package change

// CreateSchema creates a namespace.
type CreateSchema struct {
	ID    string
	Name  string
	Owner string
}

func (c *CreateSchema) StableID() string    { return c.ID }
func (c *CreateSchema) Kind() Kind          { return KindSchema }
func (c *CreateSchema) Operation() Operation { return OpCreate }

// DropSchema drops a namespace.
type DropSchema struct {
	ID   string
	Name string
}

func (d *DropSchema) StableID() string    { return d.ID }
func (d *DropSchema) Kind() Kind          { return KindSchema }
func (d *DropSchema) Operation() Operation { return OpDrop }
