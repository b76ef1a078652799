package scene

import "time"

// Animation is advanced once per tick with the time since the previous tick.
// It is dropped from the active set once Update reports done.
// Implementations must be comparable, which in practice means pointers.
type Animation interface {
	Update(elapsed time.Duration) (done bool)
}

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// Tween drives Set from From to To over Duration.
type Tween struct {
	From, To float64
	Duration time.Duration

	// Easing defaults to Linear.
	Easing Easing

	Set    func(v float64)
	OnDone func()

	elapsed time.Duration
}

// Update advances the tween and applies the eased value.
func (tw *Tween) Update(elapsed time.Duration) bool {
	tw.elapsed += elapsed
	p := tw.Progress()
	ease := tw.Easing
	if ease == nil {
		ease = Linear
	}
	if tw.Set != nil {
		tw.Set(tw.From + (tw.To-tw.From)*ease(p))
	}
	if p < 1 {
		return false
	}
	if tw.OnDone != nil {
		tw.OnDone()
	}
	return true
}

// Progress returns linear progress in [0, 1].
func (tw *Tween) Progress() float64 {
	if tw.Duration <= 0 {
		return 1
	}
	return min(1, float64(tw.elapsed)/float64(tw.Duration))
}

// Animate runs a on every tick until it is done or stopped.
func (s *System) Animate(a Animation) {
	s.animations.Add(a)
}

// StopAnimation removes a from the active set and from its owning node.
func (s *System) StopAnimation(a Animation) {
	s.animations.Remove(a)
	if n, ok := s.owners[a]; ok {
		delete(s.owners, a)
		for i, owned := range n.animations {
			if owned == a {
				n.animations = append(n.animations[:i:i], n.animations[i+1:]...)
				break
			}
		}
	}
}

// Animating reports whether a is in the active set.
func (s *System) Animating(a Animation) bool {
	return s.animations.Contains(a)
}

// Animate runs a on the node's System. The animation is stopped when the
// node is disposed or detached.
func (n *Node) Animate(a Animation) error {
	if n.disposed {
		return ErrDisposed
	}
	if n.sys == nil {
		return ErrDetached
	}
	n.animations = append(n.animations, a)
	n.sys.owners[a] = n
	n.sys.animations.Add(a)
	return nil
}

// trackAnimations resumes the node's animations on s after an attach.
func (s *System) trackAnimations(n *Node) {
	for _, a := range n.animations {
		s.owners[a] = n
		s.animations.Add(a)
	}
}

// untrackAnimations pauses the node's animations while it is detached.
func (s *System) untrackAnimations(n *Node) {
	for _, a := range n.animations {
		delete(s.owners, a)
		s.animations.Remove(a)
	}
}
