package bowling

// Frames is the fixed sequence of ten frames of one game. The current frame
// is always the first incomplete one, so frames fill strictly in order.
type Frames struct {
	frames [FrameCount]Frame
}

func NewFrames() *Frames {
	fs := &Frames{}
	for i := 0; i < FrameCount-1; i++ {
		fs.frames[i] = newNormalFrame(i + 1)
	}
	fs.frames[FrameCount-1] = newFinalFrame()
	return fs
}

// Current returns the frame the next roll belongs to.
func (fs *Frames) Current() (Frame, error) {
	for _, f := range fs.frames {
		if !f.IsComplete() {
			return f, nil
		}
	}
	return nil, ErrGameAlreadyFinished
}

// Submit adds a roll to the current frame. Frame errors are returned as is.
func (fs *Frames) Submit(pins int) error {
	f, err := fs.Current()
	if err != nil {
		return err
	}
	return f.AddRoll(pins)
}

func (fs *Frames) IsGameOver() bool {
	return fs.frames[FrameCount-1].IsComplete()
}

// Frame returns the frame at a 1-based index, or nil when out of range.
func (fs *Frames) Frame(index int) Frame {
	if index < 1 || index > FrameCount {
		return nil
	}
	return fs.frames[index-1]
}

func (fs *Frames) All() []Frame {
	return append([]Frame(nil), fs.frames[:]...)
}

// Rolls returns every roll of the game in the order it was bowled.
func (fs *Frames) Rolls() []Roll {
	var rolls []Roll
	for _, f := range fs.frames {
		rolls = append(rolls, f.Rolls()...)
	}
	return rolls
}
