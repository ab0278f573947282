package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hus/infras/jwt"
	activityModel "hus/internal/domains/activity/model"
	"hus/internal/domains/activity/recorder"
	"hus/internal/domains/auth/model/dto"
	userRepo "hus/internal/domains/user/repository"
	"hus/shared/constant"
	"hus/shared/failure"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	jwtService jwt.JWT
	recorder   recorder.Recorder
}

func New(userRepo userRepo.User, jwtService jwt.JWT, recorder recorder.Recorder) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		recorder:   recorder,
	}
}

// Login matches the credentials against the stored account and, on
// success, issues the session token whose claims become the audit actor.
// Passwords are stored and compared in plaintext; this terminal never
// leaves the property.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	user, found := s.userRepo.GetByUsername(ctx, req.Username)
	if !found || user.Password != req.Password {
		log.Warn().Str("username", req.Username).Msg("login attempt with bad credentials")

		return res, failure.AuthenticationError //nolint:wrapcheck
	}

	if !user.IsActive {
		log.Warn().Str("username", req.Username).Msg("login attempt on deactivated account")

		return res, failure.AuthenticationError //nolint:wrapcheck
	}

	session, err := s.jwtService.GenerateSession(user.ID, user.Name, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	// The request context has no actor yet; the just-authenticated user
	// becomes the actor for the session-start entry.
	actorCtx := context.WithValue(ctx, constant.ContextKeyUserID, user.ID)
	actorCtx = context.WithValue(actorCtx, constant.ContextKeyUserName, user.Name)
	actorCtx = context.WithValue(actorCtx, constant.ContextKeyUserRole, string(user.Role))

	s.recorder.Record(actorCtx, activityModel.ActionSystem, activityModel.EntitySystem, user.ID,
		fmt.Sprintf("Session started for %s.", user.Name))

	res.Session = *session
	res.User.FromModel(user)

	return res, nil
}
