package actor

// Tuning holds the movement coefficients of an actor. Speeds are in units per second, the remaining forces
// are applied once per tick.
type Tuning struct {
	SpeedHorizontal float64 `toml:"speed_horizontal"`
	SpeedVertical   float64 `toml:"speed_vertical"`
	Gravity         float64 `toml:"gravity"`
	JumpForce       float64 `toml:"jump_force"`

	GripGround           float64 `toml:"grip_ground"`
	GripAir              float64 `toml:"grip_air"`
	FrictionGround       float64 `toml:"friction_ground"`
	FrictionAir          float64 `toml:"friction_air"`
	StaticFrictionCutoff float64 `toml:"static_friction_cutoff"`

	HeadOffset      float32 `toml:"head_offset"`
	HeadOffsetCrawl float32 `toml:"head_offset_crawl"`

	HitboxRadius      float64 `toml:"hitbox_radius"`
	HitboxHeight      float64 `toml:"hitbox_height"`
	HitboxHeightCrawl float64 `toml:"hitbox_height_crawl"`

	MouseSensitivityHorizontal float32 `toml:"mouse_sensitivity_horizontal"`
	MouseSensitivityVertical   float32 `toml:"mouse_sensitivity_vertical"`
}

// DefaultTuning returns the standard keyboard and mouse tuning.
func DefaultTuning() Tuning {
	return Tuning{
		SpeedHorizontal: 4.0,
		SpeedVertical:   3.0,
		Gravity:         0.2,
		JumpForce:       10.3,

		GripGround:           1.0,
		GripAir:              0.06,
		FrictionGround:       0.5,
		FrictionAir:          0.002,
		StaticFrictionCutoff: 1.5,

		HeadOffset:      2.4,
		HeadOffsetCrawl: 0.8,

		HitboxRadius:      0.7,
		HitboxHeight:      2.8,
		HitboxHeightCrawl: 0.9,

		MouseSensitivityHorizontal: 1.0,
		MouseSensitivityVertical:   1.0,
	}
}
