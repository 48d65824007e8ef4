package grpc

import (
	"context"

	pb "github.com/griotme/griot/internal/proto"
)

var empty = &pb.Empty{}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {

	u, err := s.users.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	return toUser(u), nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.TokenResponse, error) {

	t, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return &pb.TokenResponse{Token: t.Key}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.Empty) (*pb.Empty, error) {
	if err := s.users.Logout(ctx, tokenFromContext(ctx)); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) RequestPasswordReset(ctx context.Context, req *pb.PasswordResetRequest) (*pb.Empty, error) {
	if err := s.users.RequestPasswordReset(ctx, req.Email); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) ConfirmPasswordReset(ctx context.Context, req *pb.ConfirmPasswordResetRequest) (*pb.Empty, error) {
	if err := s.users.ConfirmPasswordReset(ctx, req.UserID, req.Token, req.NewPassword); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.IDRequest) (*pb.Profile, error) {
	p, err := s.profiles.Get(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}
	return toProfile(p), nil
}

func (s *GRPCServer) UpdateProfile(ctx context.Context, req *pb.UpdateProfileRequest) (*pb.Profile, error) {
	p, err := s.profiles.Update(ctx, UserIDFromContext(ctx), req.UserID, &req.ProfilePatch)
	if err != nil {
		return nil, err
	}
	return toProfile(p), nil
}

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.Account, error) {
	a, err := s.accounts.Create(ctx, UserIDFromContext(ctx), req)
	if err != nil {
		return nil, err
	}
	return toAccount(a), nil
}

func (s *GRPCServer) GetAccount(ctx context.Context, req *pb.IDRequest) (*pb.Account, error) {
	a, err := s.accounts.Get(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}
	return toAccount(a), nil
}

func (s *GRPCServer) UpdateAccount(ctx context.Context, req *pb.UpdateAccountRequest) (*pb.Account, error) {
	a, err := s.accounts.Update(ctx, UserIDFromContext(ctx), req.ID, &req.AccountPatch)
	if err != nil {
		return nil, err
	}
	return toAccount(a), nil
}

func (s *GRPCServer) DeactivateAccount(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.accounts.Deactivate(ctx, UserIDFromContext(ctx), req.ID); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) ListAccounts(ctx context.Context, req *pb.Empty) (*pb.AccountList, error) {
	list, err := s.accounts.ListForUser(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, err
	}
	return &pb.AccountList{Owned: toAccounts(list.Owned), Beloved: toAccounts(list.Beloved)}, nil
}

func (s *GRPCServer) AddBelovedOne(ctx context.Context, req *pb.BelovedOneRequest) (*pb.Account, error) {
	a, err := s.accounts.AddBelovedOne(ctx, UserIDFromContext(ctx), req.AccountID, req.UserID)
	if err != nil {
		return nil, err
	}
	return toAccount(a), nil
}

func (s *GRPCServer) RemoveBelovedOne(ctx context.Context, req *pb.BelovedOneRequest) (*pb.Account, error) {
	a, err := s.accounts.RemoveBelovedOne(ctx, UserIDFromContext(ctx), req.AccountID, req.UserID)
	if err != nil {
		return nil, err
	}
	return toAccount(a), nil
}

func (s *GRPCServer) ListBelovedOnes(ctx context.Context, req *pb.IDRequest) (*pb.ProfileList, error) {
	list, err := s.accounts.ListBelovedOnes(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}
	return toProfiles(list), nil
}

func (s *GRPCServer) CreateCharacter(ctx context.Context, req *pb.CreateCharacterRequest) (*pb.Character, error) {
	c, err := s.characters.Create(ctx, UserIDFromContext(ctx), req)
	if err != nil {
		return nil, err
	}
	return toCharacter(c), nil
}

func (s *GRPCServer) GetCharacter(ctx context.Context, req *pb.IDRequest) (*pb.Character, error) {
	c, err := s.characters.Get(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}
	return toCharacter(c), nil
}

func (s *GRPCServer) UpdateCharacter(ctx context.Context, req *pb.UpdateCharacterRequest) (*pb.Character, error) {
	c, err := s.characters.Update(ctx, UserIDFromContext(ctx), req.ID, &req.CharacterPatch)
	if err != nil {
		return nil, err
	}
	return toCharacter(c), nil
}

func (s *GRPCServer) DeactivateCharacter(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.characters.Deactivate(ctx, UserIDFromContext(ctx), req.ID); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) CreateMemory(ctx context.Context, req *pb.CreateMemoryRequest) (*pb.Memory, error) {
	d, err := s.memories.Create(ctx, UserIDFromContext(ctx), req)
	if err != nil {
		return nil, err
	}
	return toMemory(d), nil
}

func (s *GRPCServer) GetMemory(ctx context.Context, req *pb.IDRequest) (*pb.Memory, error) {
	d, err := s.memories.Get(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}
	return toMemory(d), nil
}

func (s *GRPCServer) UpdateMemory(ctx context.Context, req *pb.UpdateMemoryRequest) (*pb.Memory, error) {
	d, err := s.memories.Update(ctx, UserIDFromContext(ctx), req.ID, &req.MemoryPatch)
	if err != nil {
		return nil, err
	}
	return toMemory(d), nil
}

func (s *GRPCServer) DeactivateMemory(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.memories.Deactivate(ctx, UserIDFromContext(ctx), req.ID); err != nil {
		return nil, err
	}
	return empty, nil
}

func (s *GRPCServer) ListMemories(ctx context.Context, req *pb.Empty) (*pb.MemoryList, error) {
	list, err := s.memories.ListForUser(ctx, UserIDFromContext(ctx))
	if err != nil {
		return nil, err
	}

	out := &pb.MemoryList{Memories: make([]*pb.Memory, 0, len(list))}
	for _, d := range list {
		out.Memories = append(out.Memories, toMemory(d))
	}
	return out, nil
}

func (s *GRPCServer) AddCharacter(ctx context.Context, req *pb.MemoryCharacterRequest) (*pb.Memory, error) {
	d, err := s.memories.AddCharacter(ctx, UserIDFromContext(ctx), req.MemoryID, req.CharacterID)
	if err != nil {
		return nil, err
	}
	return toMemory(d), nil
}

func (s *GRPCServer) RemoveCharacter(ctx context.Context, req *pb.MemoryCharacterRequest) (*pb.Memory, error) {
	d, err := s.memories.RemoveCharacter(ctx, UserIDFromContext(ctx), req.MemoryID, req.CharacterID)
	if err != nil {
		return nil, err
	}
	return toMemory(d), nil
}

func (s *GRPCServer) CreateVideo(ctx context.Context, req *pb.CreateVideoRequest) (*pb.Video, error) {
	up, err := s.videos.Create(ctx, UserIDFromContext(ctx), req)
	if err != nil {
		return nil, err
	}

	v := toVideo(up.Video)
	v.UploadURL = up.UploadURL
	return v, nil
}

func (s *GRPCServer) GetVideo(ctx context.Context, req *pb.IDRequest) (*pb.Video, error) {
	l, err := s.videos.Get(ctx, UserIDFromContext(ctx), req.ID)
	if err != nil {
		return nil, err
	}

	v := toVideo(l.Video)
	v.URL = l.URL
	return v, nil
}

func (s *GRPCServer) DeactivateVideo(ctx context.Context, req *pb.IDRequest) (*pb.Empty, error) {
	if err := s.videos.Deactivate(ctx, UserIDFromContext(ctx), req.ID); err != nil {
		return nil, err
	}
	return empty, nil
}
