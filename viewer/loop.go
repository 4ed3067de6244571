package viewer

import (
	"log"

	"github.com/felipepegoraro/opengl-mpu6050/orientation"
)

// State of the main loop.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "closing"
}

// SampleSource performs one blocking sensor read into *s.
type SampleSource interface {
	ReadSample(s *orientation.Sample) (bool, error)
}

// FrameDrawer renders one frame for a sample.
type FrameDrawer interface {
	RenderFrame(s orientation.Sample)
}

// Surface presents frames and reports window close requests.
type Surface interface {
	ShouldClose() bool
	EndFrame()
}

// SamplePublisher receives every freshly parsed sample.
type SamplePublisher interface {
	Publish(s orientation.Sample)
}

// Loop reads the sensor, draws and presents, one step at a time.
type Loop struct {
	source    SampleSource
	drawer    FrameDrawer
	surface   Surface
	publisher SamplePublisher

	state   State
	sample  orientation.Sample
	frames  uint64
	updates uint64
	errors  uint64
}

// New builds a loop in the Running state. publisher may be nil.
func New(source SampleSource, drawer FrameDrawer, surface Surface, publisher SamplePublisher) *Loop {
	return &Loop{
		source:    source,
		drawer:    drawer,
		surface:   surface,
		publisher: publisher,
	}
}

// Step runs one iteration: read, draw, present. A read error is logged and
// the frame is drawn with the last known sample.
func (l *Loop) Step() State {
	if l.state == Closing {
		return l.state
	}
	if l.surface.ShouldClose() {
		l.state = Closing
		return l.state
	}

	updated, err := l.source.ReadSample(&l.sample)
	if err != nil {
		l.errors++
		log.Printf("serial read: %v", err)
	}
	if updated {
		l.updates++
		if l.publisher != nil {
			l.publisher.Publish(l.sample)
		}
	}

	l.drawer.RenderFrame(l.sample)
	l.surface.EndFrame()
	l.frames++
	return l.state
}

// Run steps until the surface asks to close.
func (l *Loop) Run() {
	log.Println("Starting interactive render loop...")
	for l.Step() == Running {
	}
	log.Printf("render loop closed after %d frames (%d samples, %d read errors)", l.frames, l.updates, l.errors)
}

func (l *Loop) State() State {
	return l.state
}

// Sample returns the attitude used for the latest frame.
func (l *Loop) Sample() orientation.Sample {
	return l.sample
}

func (l *Loop) Frames() uint64 {
	return l.frames
}
