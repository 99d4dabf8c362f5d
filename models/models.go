package models

// All lists every persisted model in migration order.
func All() []any {
	return []any{
		&ServiceRequest{},
		&ContactMessage{},
		&Project{},
		&Skill{},
		&ProjectSkill{},
		&Testimonial{},
		&SocialLink{},
		&AboutMe{},
	}
}

// Defaulter is implemented by models whose zero value differs from the
// defaults an operator expects on creation.
type Defaulter interface {
	SetDefaults()
}
