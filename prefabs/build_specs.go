package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image string `yaml:"image"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	TargetName string  `yaml:"target_name"`
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type MovementComponentSpec struct {
	Speed *float64 `yaml:"speed"`
}

type LocomotionComponentSpec struct {
	Facing   string `yaml:"facing"`
	Activity string `yaml:"activity"`
}

type StateScopedComponentSpec struct {
	State string `yaml:"state"`
}

type SheetSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
	Cols   int    `yaml:"cols"`
	Rows   int    `yaml:"rows"`
}

type ClipSpec struct {
	First uint `yaml:"first"`
	Last  uint `yaml:"last"`
	FPS   uint `yaml:"fps"`
}

// AnimationComponentSpec is keyed by activity name, then facing name for
// clips.
type AnimationComponentSpec struct {
	Sheets map[string]SheetSpec           `yaml:"sheets"`
	Clips  map[string]map[string]ClipSpec `yaml:"clips"`
}
