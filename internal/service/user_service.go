package service

import (
	"context"
	"sort"

	"notevision-be/internal/dto"
	"notevision-be/internal/entity"
	"notevision-be/internal/pkg/apperror"
	"notevision-be/internal/repository/specification"
	"notevision-be/internal/repository/unitofwork"
	"notevision-be/pkg/aggregate"
)

type IUserService interface {
	Me(ctx context.Context, email string) (*dto.UserProfileResponse, error)
	Stats(ctx context.Context, email string) (*aggregate.Stats, error)
	ProfileDetails(ctx context.Context, email string) (*dto.ProfileDetailsResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (c *userService) Me(ctx context.Context, email string) (*dto.UserProfileResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	return &dto.UserProfileResponse{Id: user.Id, Email: user.Email, Name: user.Name}, nil
}

func (c *userService) loadOwnedAndShared(ctx context.Context, uow unitofwork.UnitOfWork, email string) ([]*entity.Notebook, []*entity.Notebook, error) {
	owned, err := uow.NotebookRepository().FindAll(ctx, specification.OwnedBy{OwnerEmail: email})
	if err != nil {
		return nil, nil, err
	}

	sharedWith, err := uow.NotebookRepository().FindAll(ctx,
		specification.NotOwnedBy{OwnerEmail: email},
		specification.AccessListContains{UserEmail: email},
	)
	if err != nil {
		return nil, nil, err
	}

	return owned, sharedWith, nil
}

func (c *userService) Stats(ctx context.Context, email string) (*aggregate.Stats, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	owned, sharedWith, err := c.loadOwnedAndShared(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	stats := aggregate.ComputeStats(owned, sharedWith)
	return &stats, nil
}

func (c *userService) ProfileDetails(ctx context.Context, email string) (*dto.ProfileDetailsResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	owned, sharedWith, err := c.loadOwnedAndShared(ctx, uow, email)
	if err != nil {
		return nil, err
	}

	sharedBy := make([]dto.SharedByInfo, 0)
	publicLikes := make([]dto.PublicNotebookLikes, 0)
	for _, nb := range owned {
		if len(nb.AccessList) > 0 {
			sharedBy = append(sharedBy, dto.SharedByInfo{
				Id:         nb.Id,
				Name:       nb.Name,
				SharedWith: nb.AccessList,
			})
		}
		if nb.IsPublic {
			publicLikes = append(publicLikes, dto.PublicNotebookLikes{
				Id:        nb.Id,
				Name:      nb.Name,
				LikeCount: len(nb.Likes),
			})
		}
	}
	sort.Slice(publicLikes, func(i, j int) bool {
		if publicLikes[i].LikeCount != publicLikes[j].LikeCount {
			return publicLikes[i].LikeCount > publicLikes[j].LikeCount
		}
		return publicLikes[i].Name < publicLikes[j].Name
	})

	sharedWithInfos := make([]dto.SharedWithInfo, 0, len(sharedWith))
	for _, nb := range sharedWith {
		permission := entity.PermissionView
		if entry := nb.AccessFor(email); entry != nil {
			permission = entry.Permission
		}
		sharedWithInfos = append(sharedWithInfos, dto.SharedWithInfo{
			Id:         nb.Id,
			Name:       nb.Name,
			OwnerEmail: nb.OwnerEmail,
			Permission: permission,
		})
	}

	return &dto.ProfileDetailsResponse{
		Email:                   user.Email,
		Name:                    user.Name,
		Stats:                   aggregate.ComputeStats(owned, sharedWith),
		NotebooksSharedByUser:   sharedBy,
		NotebooksSharedWithUser: sharedWithInfos,
		PublicNotebooksLikes:    publicLikes,
	}, nil
}
