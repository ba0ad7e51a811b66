package model

// swagger:model Post
type Post struct {
	BaseModel
	AuthorID uint   `gorm:"index;not null" json:"authorId"`
	Author   User   `gorm:"foreignKey:AuthorID;references:ID;constraint:false" json:"author,omitempty"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Post) TableName() string {
	return "posts"
}

// Endorsement 用户对帖子的背书，需要 CanEndorse 权限
type Endorsement struct {
	BaseModel
	GiverID uint `gorm:"uniqueIndex:uniq_endorsement;not null" json:"giverId"`
	Giver   User `gorm:"foreignKey:GiverID;references:ID;constraint:false" json:"giver,omitempty"`
	PostID  uint `gorm:"uniqueIndex:uniq_endorsement;not null" json:"postId"`
	Post    Post `gorm:"foreignKey:PostID;references:ID;constraint:false" json:"post,omitempty"`
}

func (Endorsement) TableName() string {
	return "endorsements"
}
