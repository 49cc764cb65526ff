package models

const (
	DefaultUserImageURL = "/static/images/default-pic.png"
	DefaultUserRole     = "user"
)

type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"size:20;uniqueIndex;not null"`
	Password    string `json:"-" gorm:"not null"`
	DisplayName string `json:"display_name" gorm:"size:20;uniqueIndex;not null"`
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	RoleName    string `json:"role_name" gorm:"size:20;not null;default:'user'"`
	ImageURL    string `json:"image_url" gorm:"not null;default:'/static/images/default-pic.png'"`
	Country     string `json:"country" gorm:"size:30"`
	Bio         string `json:"bio"`

	// Relationships
	Role   Role               `json:"role,omitempty" gorm:"foreignKey:RoleName;references:Name"`
	Scores []MinesweeperScore `json:"scores,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Stat   *MinesweeperStat   `json:"stat,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// IsAdmin returns true if the user has an admin role.
func (u *User) IsAdmin() bool {
	return u.RoleName == "admin"
}
