package workload

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"
)

// Kind is the type of a workload operation.
type Kind uint8

const (
	Create Kind = iota + 1
	Delete
	Retrieve
)

func (k Kind) String() string {
	switch k {
	case Create:
		return "CREATE"
	case Delete:
		return "DELETE"
	case Retrieve:
		return "RETRIEVE"
	default:
		return ""
	}
}

// Op is a single step of the workload. IP is set for Create and holds the
// expected address for Retrieve.
type Op struct {
	Kind       Kind
	DeviceName string
	IP         string
}

// Generator produces a deterministic sequence of operations over a set of
// live devices. Delete and Retrieve always refer to a device that was created
// earlier and has not been deleted since.
type Generator struct {
	rnd     *rand.Rand
	live    []string
	ips     map[string]string
	pending []Op
}

func NewGenerator(seed int64) *Generator {
	return &Generator{
		rnd: rand.New(rand.NewSource(seed)), //nolint:gosec
		ips: make(map[string]string),
	}
}

// Generate runs the given number of generator steps. A step normally yields
// one operation, but creating a device whose name is already taken yields a
// Delete of the old record followed by the Create.
func Generate(iterations int, seed int64) []Op {
	g := NewGenerator(seed)
	ops := make([]Op, 0, iterations)

	for i := 0; i < iterations; i++ {
		ops = append(ops, g.step()...)
	}

	return ops
}

// Next returns the next operation of the sequence.
func (g *Generator) Next() Op {
	for len(g.pending) == 0 {
		g.pending = g.step()
	}

	op := g.pending[0]
	g.pending = g.pending[1:]

	return op
}

// IsLive returns true if the device currently exists in the generated state.
func (g *Generator) IsLive(name string) bool {
	_, ok := g.ips[name]
	return ok
}

// Live returns the number of live devices.
func (g *Generator) Live() int {
	return len(g.live)
}

func (g *Generator) step() []Op {
	if len(g.live) > 0 && g.rnd.Float64() > 0.5 {
		name := g.live[g.rnd.Intn(len(g.live))]

		if g.rnd.Intn(2) == 0 {
			g.remove(name)
			return []Op{{Kind: Delete, DeviceName: name}}
		}

		return []Op{{Kind: Retrieve, DeviceName: name, IP: g.ips[name]}}
	}

	var ops []Op

	ip := g.randomIP()
	name := g.randomName()

	if g.IsLive(name) {
		g.remove(name)
		ops = append(ops, Op{Kind: Delete, DeviceName: name})
	}

	g.live = append(g.live, name)
	g.ips[name] = ip

	return append(ops, Op{Kind: Create, DeviceName: name, IP: ip})
}

func (g *Generator) remove(name string) {
	if idx := slices.Index(g.live, name); idx >= 0 {
		g.live = slices.Delete(g.live, idx, idx+1)
	}

	delete(g.ips, name)
}

func (g *Generator) randomIP() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		g.rnd.Intn(256), g.rnd.Intn(256), g.rnd.Intn(256), g.rnd.Intn(256))
}

func (g *Generator) randomName() string {
	return fmt.Sprintf("%s%d's %s",
		namesPool[g.rnd.Intn(len(namesPool))],
		g.rnd.Intn(201),
		devicePool[g.rnd.Intn(len(devicePool))],
	)
}
