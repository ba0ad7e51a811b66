package model

// Privileges 固定的能力集合，由发帖数确定性推导，不用松散的 map
type Privileges struct {
	CanUpvote  bool `gorm:"default:false" json:"canUpvote"`
	CanEndorse bool `gorm:"default:false" json:"canEndorse"`
}

// ComputePrivileges 根据发帖数推导权限：1 帖可点赞，2 帖可背书
func ComputePrivileges(postCount int64) Privileges {
	return Privileges{
		CanUpvote:  postCount >= 1,
		CanEndorse: postCount >= 2,
	}
}

// Level 用户等级，注册时创建，随发帖数变化
type Level struct {
	BaseModel
	UserID     uint `gorm:"unique;not null" json:"userId"`
	Level      int  `gorm:"default:0" json:"level"`
	Privileges `gorm:"embedded" json:"privileges"`
}

func (Level) TableName() string {
	return "levels"
}
