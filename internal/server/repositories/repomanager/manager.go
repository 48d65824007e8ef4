package repomanager

import (
	"github.com/griotme/griot/internal/dbx"
	"github.com/griotme/griot/internal/server/repositories/accounts"
	"github.com/griotme/griot/internal/server/repositories/characters"
	"github.com/griotme/griot/internal/server/repositories/memories"
	"github.com/griotme/griot/internal/server/repositories/profiles"
	"github.com/griotme/griot/internal/server/repositories/tokens"
	"github.com/griotme/griot/internal/server/repositories/users"
	"github.com/griotme/griot/internal/server/repositories/videos"
)

// RepositoryManager vends repositories bound to a handle obtained from its
// own TxRunner side: Handle() for standalone calls, the tx passed to WithTx
// for atomic groups.
type RepositoryManager interface {
	dbx.TxRunner

	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Tokens(db dbx.DBTX) tokens.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Characters(db dbx.DBTX) characters.Repository
	Memories(db dbx.DBTX) memories.Repository
	Videos(db dbx.DBTX) videos.Repository
}
