package service

import (
	"Socials/internal/api/dto"
	"Socials/internal/model"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04:05"

func toProfileDTO(profile *model.Profile, storage ObjectStorage) *dto.ProfileDTO {
	item := &dto.ProfileDTO{}
	_ = copier.Copy(item, profile)
	item.Username = profile.User.Username
	if profile.ProfilePic != "" {
		item.ProfilePic = storage.GetPublicURL(profile.ProfilePic)
	}
	return item
}

func toProfileDTOs(profiles []*model.Profile, storage ObjectStorage) []*dto.ProfileDTO {
	res := make([]*dto.ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		res = append(res, toProfileDTO(p, storage))
	}
	return res
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	item := &dto.CommentDTO{}
	_ = copier.Copy(item, comment)
	item.Username = comment.User.Username
	item.CreatedAt = comment.CreatedAt.Format(timeLayout)
	return item
}

func toPostDTO(post *model.Post, storage ObjectStorage) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, post)
	item.Comments = make([]*dto.CommentDTO, 0, len(post.Comments))
	for i := range post.Comments {
		item.Comments = append(item.Comments, toCommentDTO(&post.Comments[i]))
	}
	item.Username = post.User.Username
	if post.Image != "" {
		item.Image = storage.GetPublicURL(post.Image)
	}
	item.CreatedAt = post.CreatedAt.Format(timeLayout)
	item.UpdatedAt = post.UpdatedAt.Format(timeLayout)
	return item
}

// toPostDTOs 转换帖子列表，liked 为当前用户点过赞的帖子集合
func toPostDTOs(posts []*model.Post, liked map[uint64]struct{}, storage ObjectStorage) []*dto.PostDTO {
	res := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item := toPostDTO(p, storage)
		_, item.Liked = liked[p.ID]
		res = append(res, item)
	}
	return res
}
