package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	zero "github.com/rs/zerolog/log"

	"github.com/aoradev/aora-go/internal/config"
	"github.com/aoradev/aora-go/internal/domain"
	"github.com/aoradev/aora-go/internal/platform/appwrite"
	"github.com/aoradev/aora-go/internal/service"
	core "github.com/aoradev/aora-go/internal/service/impl"
)

// A small command line front for poking at a configured project. Sessions
// only live for the duration of the process, so commands that need one sign
// in first using AORA_EMAIL and AORA_PASSWORD.
func main() {
	zero.Logger = zero.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client := appwrite.New(cfg, &http.Client{Timeout: 30 * time.Second})
	s := core.New(cfg, client)
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "signup":
		if len(os.Args) != 5 {
			usage()
		}
		user, err := s.CreateUser(ctx, os.Args[2], os.Args[3], os.Args[4])
		if err != nil {
			zero.Fatal().Err(err).Msg("sign up failed")
		}
		fmt.Printf("registered %s (account %s)\n", user.Username, user.AccountID)
	case "whoami":
		signIn(ctx, s)
		user, err := s.GetCurrentUser(ctx)
		if err != nil {
			zero.Fatal().Err(err).Msg("could not resolve the current user")
		}
		fmt.Printf("%s <%s> avatar %s\n", user.Username, user.Email, user.Avatar)
	case "all":
		printPosts(s.GetAllPosts(ctx))
	case "latest":
		printPosts(s.GetLatestPosts(ctx))
	case "search":
		if len(os.Args) != 3 {
			usage()
		}
		printPosts(s.SearchPosts(ctx, os.Args[2]))
	case "posts":
		if len(os.Args) != 3 {
			usage()
		}
		printPosts(s.GetUserPosts(ctx, os.Args[2]))
	case "publish":
		if len(os.Args) != 6 {
			usage()
		}
		user := signIn(ctx, s)
		post, err := s.CreateVideo(ctx, domain.VideoForm{
			Title:     os.Args[2],
			Prompt:    os.Args[3],
			UserID:    user.AccountID,
			Thumbnail: assetFromPath(os.Args[4], domain.KindImage),
			Video:     assetFromPath(os.Args[5], domain.KindVideo),
		})
		if err != nil {
			zero.Fatal().Err(err).Msg("publish failed")
		}
		fmt.Printf("published %s as %s\n", post.Title, post.ID)
	default:
		usage()
	}
}

func signIn(ctx context.Context, s service.Service) domain.User {
	email, password := os.Getenv("AORA_EMAIL"), os.Getenv("AORA_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("set AORA_EMAIL and AORA_PASSWORD to run authenticated commands")
	}
	if _, err := s.SignIn(ctx, email, password); err != nil {
		zero.Fatal().Err(err).Msg("sign in failed")
	}
	user, err := s.GetCurrentUser(ctx)
	if err != nil {
		zero.Fatal().Err(err).Msg("could not resolve the current user")
	}
	return user
}

func assetFromPath(path string, kind domain.FileKind) domain.FileAsset {
	info, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}

	mimeType := "image/png"
	if kind == domain.KindVideo {
		mimeType = "video/mp4"
	}
	return domain.FileAsset{
		Name:     info.Name(),
		MimeType: mimeType,
		Size:     info.Size(),
		URI:      path,
	}
}

func printPosts(posts []domain.Post, err error) {
	if err != nil {
		zero.Fatal().Err(err).Msg("listing failed")
	}
	for _, post := range posts {
		fmt.Printf("%s\t%s\tby %s\n\t%s\n", post.ID, post.Title, post.Creator, post.Video)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  aora signup <email> <password> <username>
  aora whoami
  aora all
  aora latest
  aora search <term>
  aora posts <account-id>
  aora publish <title> <prompt> <thumbnail> <video>`)
	os.Exit(2)
}
