package grpc

import (
	"time"

	pb "github.com/griotme/griot/internal/proto"
	"github.com/griotme/griot/internal/server/models"
)

func toUser(u *models.User) *pb.User {
	return &pb.User{ID: u.ID, Username: u.Username, Email: u.Email}
}

func toProfile(p *models.Profile) *pb.Profile {
	out := &pb.Profile{
		UserID:     p.UserID,
		Name:       p.Name,
		MiddleName: p.MiddleName,
		LastName:   p.LastName,
		Gender:     string(p.Gender),
		Language:   string(p.Language),
		Timezone:   p.Timezone,
		Picture:    p.Picture,
	}
	if p.BirthDate != nil {
		out.BirthDate = p.BirthDate.Format(time.DateOnly)
	}
	return out
}

func toProfiles(list []*models.Profile) *pb.ProfileList {
	out := &pb.ProfileList{Profiles: make([]*pb.Profile, 0, len(list))}
	for _, p := range list {
		out.Profiles = append(out.Profiles, toProfile(p))
	}
	return out
}

func toAccount(a *models.Account) *pb.Account {
	beloved := a.BelovedOnes
	if beloved == nil {
		beloved = []string{}
	}
	return &pb.Account{ID: a.ID, OwnerID: a.OwnerID, Name: a.Name, BelovedOnes: beloved, CreatedAt: a.CreatedAt}
}

func toAccounts(list []*models.Account) []*pb.Account {
	out := make([]*pb.Account, 0, len(list))
	for _, a := range list {
		out = append(out, toAccount(a))
	}
	return out
}

func toCharacter(c *models.Character) *pb.Character {
	return &pb.Character{
		ID:           c.ID,
		AccountID:    c.AccountID,
		Name:         c.Name,
		Relationship: string(c.Relationship),
		PhoneNumber:  c.PhoneNumber,
		Email:        c.Email,
		Picture:      c.Picture,
	}
}

func toVideo(v *models.Video) *pb.Video {
	return &pb.Video{ID: v.ID, MemoryID: v.MemoryID, Filename: v.Filename, ContentType: v.ContentType}
}

func toMemory(d *models.MemoryDetail) *pb.Memory {
	out := &pb.Memory{
		ID:         d.Memory.ID,
		AccountID:  d.Memory.AccountID,
		Title:      d.Memory.Title,
		CreatedAt:  d.Memory.CreatedAt,
		Characters: make([]*pb.Character, 0, len(d.Characters)),
		Videos:     make([]*pb.Video, 0, len(d.Videos)),
	}
	for _, c := range d.Characters {
		out.Characters = append(out.Characters, toCharacter(c))
	}
	for _, l := range d.Videos {
		v := toVideo(l.Video)
		v.URL = l.URL
		out.Videos = append(out.Videos, v)
	}
	return out
}
