package prefabs

import "testing"

func TestLoadEmbeddedPrefabs(t *testing.T) {
	tests := []struct {
		file       string
		name       string
		components []string
	}{
		{"player.yaml", "player", []string{"player_tag", "transform", "velocity", "physics_body", "gravity", "jump_budget", "input"}},
		{"prefabs/camera.yaml", "camera", []string{"camera_tag", "transform", "orbit_camera", "input"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := LoadEntityBuildSpec(tc.file)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if spec.Name != tc.name {
				t.Fatalf("name = %q, expected %q", spec.Name, tc.name)
			}
			for _, c := range tc.components {
				if _, ok := spec.Components[c]; !ok {
					t.Errorf("missing component %q", c)
				}
			}
		})
	}
}

func TestDecodeComponentSpec(t *testing.T) {
	spec, err := LoadEntityBuildSpec("player.yaml")
	if err != nil {
		t.Fatal(err)
	}
	body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](spec.Components["physics_body"])
	if err != nil {
		t.Fatal(err)
	}
	if body.Shape != "cube" || body.Size == nil || body.Size.Y != 1 {
		t.Fatalf("unexpected physics body spec %+v", body)
	}
	jumps, err := DecodeComponentSpec[JumpBudgetComponentSpec](spec.Components["jump_budget"])
	if err != nil {
		t.Fatal(err)
	}
	if jumps.MaxJumps != 2 {
		t.Fatalf("max_jumps = %d, expected 2", jumps.MaxJumps)
	}

	empty, err := DecodeComponentSpec[VelocityComponentSpec](nil)
	if err != nil || empty != (VelocityComponentSpec{}) {
		t.Fatalf("nil raw should decode to zero value, got %+v %v", empty, err)
	}
}

func TestMissingPrefab(t *testing.T) {
	if _, err := LoadEntityBuildSpec("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestCleanPrefabPath(t *testing.T) {
	tests := map[string]string{
		"":                    "",
		"player.yaml":         "player.yaml",
		"prefabs/camera.yaml": "camera.yaml",
	}
	for in, want := range tests {
		if got := cleanPrefabPath(in); got != want {
			t.Errorf("cleanPrefabPath(%q) = %q, expected %q", in, got, want)
		}
	}
}
