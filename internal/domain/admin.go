package domain

import "time"

// AdminUser es una cuenta con acceso al panel de administración.
type AdminUser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Activity es una entrada del feed de actividad del dashboard.
type Activity struct {
	ID        string    `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats agrupa los conteos que muestra el dashboard.
type DashboardStats struct {
	Blogs        int `json:"blogs"`
	News         int `json:"news"`
	Events       int `json:"events"`
	Careers      int `json:"careers"`
	Partners     int `json:"partners"`
	TeamMembers  int `json:"team"`
	Testimonials int `json:"testimonials"`
	Inquiries    int `json:"inquiries"`
}
