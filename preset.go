package swatchr

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// presetPreamble is the Unity serialization header for a ColorPresetLibrary asset
const presetPreamble = "%YAML 1.1\n%TAG !u! tag:unity3d.com,2011:\n--- !u!114 &1\n"

type presetLibrary struct {
	MonoBehaviour presetBehaviour `yaml:"MonoBehaviour"`
}

type presetBehaviour struct {
	ObjectHideFlags       int          `yaml:"m_ObjectHideFlags"`
	PrefabParentObject    presetRef    `yaml:"m_PrefabParentObject,flow"`
	PrefabInternal        presetRef    `yaml:"m_PrefabInternal,flow"`
	GameObject            presetRef    `yaml:"m_GameObject,flow"`
	Enabled               int          `yaml:"m_Enabled"`
	EditorHideFlags       int          `yaml:"m_EditorHideFlags"`
	Script                presetScript `yaml:"m_Script,flow"`
	Name                  string       `yaml:"m_Name"`
	EditorClassIdentifier string       `yaml:"m_EditorClassIdentifier"`
	Presets               []preset     `yaml:"m_Presets"`
}

type presetRef struct {
	FileID int `yaml:"fileID"`
}

type presetScript struct {
	FileID int    `yaml:"fileID"`
	GUID   string `yaml:"guid"`
	Type   int    `yaml:"type"`
}

type preset struct {
	Name  string      `yaml:"m_Name"`
	Color presetColor `yaml:"m_Color,flow"`
}

type presetColor struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
	A float32 `yaml:"a"`
}

// WritePresetLibrary writes the swatch as a Unity color preset library (.colors file)
func WritePresetLibrary(w io.Writer, s *Swatch) error {
	colors := s.Colors()
	lib := presetLibrary{
		MonoBehaviour: presetBehaviour{
			ObjectHideFlags: 52,
			Enabled:         1,
			EditorHideFlags: 1,
			Script: presetScript{
				FileID: 12323,
				GUID:   "0000000000000000e000000000000000",
			},
			Presets: make([]preset, len(colors)),
		},
	}
	for i, c := range colors {
		lib.MonoBehaviour.Presets[i].Color = presetColor{R: c.R, G: c.G, B: c.B, A: 1}
	}
	if _, err := io.WriteString(w, presetPreamble); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&lib); err != nil {
		return fmt.Errorf("failed to encode preset library: %w", err)
	}
	return enc.Close()
}
