package lighting

// Material holds the Phong reflection coefficients of an object.
type Material struct {
	Ka        [3]float32 `yaml:"ka"`
	Kd        [3]float32 `yaml:"kd"`
	Ks        [3]float32 `yaml:"ks"`
	Shininess float32    `yaml:"shininess"`
}

// Clamp keeps coefficients in 0..1 and shininess non-negative.
func (m *Material) Clamp() {
	for i := 0; i < 3; i++ {
		m.Ka[i] = clamp01(m.Ka[i])
		m.Kd[i] = clamp01(m.Kd[i])
		m.Ks[i] = clamp01(m.Ks[i])
	}
	if m.Shininess < 0 {
		m.Shininess = 0
	}
}
