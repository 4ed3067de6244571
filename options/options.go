package options

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// ViewerOptions is the complete runtime configuration. Every zero value is
// replaced by the matching field of Default().
type ViewerOptions struct {
	Serial SerialOptions `yaml:"serial"`
	Window WindowOptions `yaml:"window"`
	Render RenderOptions `yaml:"render"`
	MQTT   MQTTOptions   `yaml:"mqtt"`
}

type SerialOptions struct {
	Device     string `yaml:"device"`
	Baud       int    `yaml:"baud"`
	ReadBuffer int    `yaml:"read_buffer"`
	// ReassembleLines keeps the unterminated tail of a read for the next one
	// instead of dropping it.
	ReassembleLines bool `yaml:"reassemble_lines"`
}

type WindowOptions struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Title        string `yaml:"title"`
	SwapInterval *int   `yaml:"swap_interval"`
}

type RenderOptions struct {
	VertexShader   string     `yaml:"vertex_shader"`
	FragmentShader string     `yaml:"fragment_shader"`
	FovDeg         float32    `yaml:"fov_deg"`
	Near           float32    `yaml:"near"`
	Far            float32    `yaml:"far"`
	Camera         [3]float32 `yaml:"camera"`
	Rotation       string     `yaml:"rotation"` // "euler" or "quaternion"
}

// MQTTOptions configures the optional telemetry mirror. An empty Broker
// disables it.
type MQTTOptions struct {
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}

func Default() ViewerOptions {
	swap := 1
	return ViewerOptions{
		Serial: SerialOptions{
			Device:     "/dev/ttyUSB0",
			Baud:       57600,
			ReadBuffer: 256,
		},
		Window: WindowOptions{
			Width:        800,
			Height:       800,
			Title:        "OpenGL: MPU6050 Cube Rotation",
			SwapInterval: &swap,
		},
		Render: RenderOptions{
			VertexShader:   "./vertex.glsl",
			FragmentShader: "./frag.glsl",
			FovDeg:         60,
			Near:           0.1,
			Far:            1000,
			Camera:         [3]float32{0, 0, 12},
			Rotation:       "euler",
		},
		MQTT: MQTTOptions{
			ClientID: "cubeview",
			Topic:    "mpu6050/orientation",
		},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (ViewerOptions, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ViewerOptions{}, err
	}
	return Parse(b)
}

// LoadOrDefault behaves like Load but returns Default() when path does not exist.
func LoadOrDefault(path string) (ViewerOptions, error) {
	opts, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return opts, err
}

func Parse(b []byte) (ViewerOptions, error) {
	var opts ViewerOptions
	if err := yaml.Unmarshal(b, &opts); err != nil {
		return ViewerOptions{}, err
	}
	def := Default()

	if opts.Serial.Device == "" {
		opts.Serial.Device = def.Serial.Device
	}
	if opts.Serial.Baud == 0 {
		opts.Serial.Baud = def.Serial.Baud
	}
	if opts.Serial.Baud < 0 {
		return ViewerOptions{}, fmt.Errorf("serial.baud must be > 0")
	}
	if opts.Serial.ReadBuffer == 0 {
		opts.Serial.ReadBuffer = def.Serial.ReadBuffer
	}
	if opts.Serial.ReadBuffer < 2 {
		return ViewerOptions{}, fmt.Errorf("serial.read_buffer must be >= 2")
	}

	if opts.Window.Width == 0 {
		opts.Window.Width = def.Window.Width
	}
	if opts.Window.Height == 0 {
		opts.Window.Height = def.Window.Height
	}
	if opts.Window.Width < 0 || opts.Window.Height < 0 {
		return ViewerOptions{}, fmt.Errorf("window.width and window.height must be > 0")
	}
	if opts.Window.Title == "" {
		opts.Window.Title = def.Window.Title
	}
	if opts.Window.SwapInterval == nil {
		opts.Window.SwapInterval = def.Window.SwapInterval
	}

	if opts.Render.VertexShader == "" {
		opts.Render.VertexShader = def.Render.VertexShader
	}
	if opts.Render.FragmentShader == "" {
		opts.Render.FragmentShader = def.Render.FragmentShader
	}
	if opts.Render.FovDeg == 0 {
		opts.Render.FovDeg = def.Render.FovDeg
	}
	if opts.Render.FovDeg <= 0 || opts.Render.FovDeg >= 180 {
		return ViewerOptions{}, fmt.Errorf("render.fov_deg must be in (0, 180)")
	}
	if opts.Render.Near == 0 {
		opts.Render.Near = def.Render.Near
	}
	if opts.Render.Far == 0 {
		opts.Render.Far = def.Render.Far
	}
	if opts.Render.Near <= 0 || opts.Render.Far <= opts.Render.Near {
		return ViewerOptions{}, fmt.Errorf("render.near must be > 0 and below render.far")
	}
	if opts.Render.Camera == [3]float32{} {
		opts.Render.Camera = def.Render.Camera
	}
	switch opts.Render.Rotation {
	case "":
		opts.Render.Rotation = def.Render.Rotation
	case "euler", "quaternion":
	default:
		return ViewerOptions{}, fmt.Errorf(`render.rotation must be "euler" or "quaternion"`)
	}

	if opts.MQTT.ClientID == "" {
		opts.MQTT.ClientID = def.MQTT.ClientID
	}
	if opts.MQTT.Topic == "" {
		opts.MQTT.Topic = def.MQTT.Topic
	}
	return opts, nil
}
