package change

// CreateTrigger creates a trigger from its captured definition text.
type CreateTrigger struct {
	ID         string
	Schema     string
	Table      string
	Name       string
	Definition string
}

func (c *CreateTrigger) StableID() string    { return c.ID }
func (c *CreateTrigger) Kind() Kind          { return KindTrigger }
func (c *CreateTrigger) Operation() Operation { return OpCreate }

// DropTrigger drops a trigger.
type DropTrigger struct {
	ID     string
	Schema string
	Table  string
	Name   string
}

func (d *DropTrigger) StableID() string    { return d.ID }
func (d *DropTrigger) Kind() Kind          { return KindTrigger }
func (d *DropTrigger) Operation() Operation { return OpDrop }
