package tween

// Component binds an Engine to a Node and plays or stops it as the node and
// the component are switched on and off, according to the engine's PlayMode:
//
//   - PlayOnEnable plays every time the component becomes active.
//   - PlayOnStart plays the first time the component becomes active.
//   - Becoming inactive always stops the engine.
//
// While the component is disabled, or its node is inactive or disposed, the
// engine refuses Play, Replay and Toggle.
type Component struct {
	Engine *Engine
	Node   *Node

	enabled bool
	started bool
}

// Attach creates an enabled component for engine on node and installs it as
// the engine's gate. If node is active in its hierarchy the component
// activates immediately, which plays the engine under PlayOnEnable and
// PlayOnStart.
func Attach(node *Node, engine *Engine) *Component {
	c := &Component{Engine: engine, Node: node, enabled: true}
	if engine.Name == "" {
		engine.Name = node.Name
	}
	engine.SetGate(c.canPlay)
	node.components = append(node.components, c)
	c.activate()
	return c
}

// Detach stops the engine, removes the component from its node and clears
// the engine's gate.
func (c *Component) Detach() {
	c.Engine.Stop()
	c.Engine.SetGate(nil)
	for i, other := range c.Node.components {
		if other == c {
			c.Node.components = append(c.Node.components[:i], c.Node.components[i+1:]...)
			break
		}
	}
}

// Enabled reports the component's own enabled flag.
func (c *Component) Enabled() bool {
	return c.enabled
}

// SetEnabled enables or disables the component. Disabling stops the engine;
// enabling on an active node behaves like the node becoming active.
func (c *Component) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	if !enabled {
		c.deactivate()
		c.enabled = false
		return
	}
	c.enabled = true
	c.activate()
}

// Started reports whether the component has been active at least once.
func (c *Component) Started() bool {
	return c.started
}

func (c *Component) canPlay() bool {
	return c.enabled && !c.Node.disposed && c.Node.ActiveInHierarchy()
}

func (c *Component) activate() {
	if !c.canPlay() {
		return
	}
	if c.Engine.PlayMode() == PlayOnEnable {
		c.Engine.Play()
	}
	if !c.started {
		c.started = true
		if c.Engine.PlayMode() == PlayOnStart {
			c.Engine.Play()
		}
	}
}

func (c *Component) deactivate() {
	c.Engine.Stop()
}
