package model

// Room is an immutable problem fact identified by its name. Capacity is not
// modeled.
type Room struct {
	Name string
}

func (r Room) String() string { return r.Name }
