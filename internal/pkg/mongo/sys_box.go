package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SysBoxCollection = "sys_box"

// SysBoxModel 系统通知模型
type SysBoxModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 消息接收者的用户ID
	SenderID   uint64             `bson:"sender_id" json:"senderId"`     // 动作发起者的用户ID
	Type       int8               `bson:"type" json:"type"`              // 1-帖子点赞, 2-被关注
	TargetID   uint64             `bson:"target_id" json:"targetId"`     // 帖子ID 或 主页ID
	Content    string             `bson:"content" json:"content"`
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
