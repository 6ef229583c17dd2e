package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"pokehub/pkg/models"
)

const defaultBaseURL = "http://localhost:8080"

func main() {
	global := flag.NewFlagSet("pokehub", flag.ExitOnError)
	baseURL := global.String("api", defaultBaseURL, "API base URL")
	if err := global.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	args := global.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	client := &http.Client{Timeout: 30 * time.Second}

	switch args[0] {
	case "list":
		handleList(ctx, client, *baseURL, args[1:])
	case "show":
		handleShow(ctx, client, *baseURL, args[1:])
	case "of-the-day":
		handleOfTheDay(ctx, client, *baseURL, args[1:])
	case "types":
		handleTypes(ctx, client, *baseURL, args[1:])
	case "generations":
		handleGenerations(ctx, client, *baseURL, args[1:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func handleList(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("search", "", "name filter")
	language := fs.String("language", "", "translation language")
	types := fs.String("types", "", "comma-separated type slugs")
	generations := fs.String("generation", "", "comma-separated generation slugs")
	limit := fs.Int("limit", 30, "page size")
	cursor := fs.Int("cursor", 1, "pagination cursor")
	_ = fs.Parse(args)

	u, err := url.Parse(baseURL + "/pokemon")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := u.Query()
	if *search != "" {
		qv.Set("search", *search)
	}
	if *language != "" {
		qv.Set("language", *language)
	}
	if *types != "" {
		qv.Set("types", *types)
	}
	if *generations != "" {
		qv.Set("generation", *generations)
	}
	qv.Set("limit", fmt.Sprintf("%d", *limit))
	qv.Set("cursor", fmt.Sprintf("%d", *cursor))
	u.RawQuery = qv.Encode()

	var resp models.PokemonPage
	if err := doJSON(ctx, client, u.String(), &resp); err != nil {
		log.Fatalf("list failed: %v", err)
	}
	printJSON(resp)
}

func handleShow(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "pokemon id or name")
	language := fs.String("language", "", "translation language")
	_ = fs.Parse(args)
	if *id == "" {
		log.Fatal("id is required")
	}

	endpoint := baseURL + "/pokemon/" + url.PathEscape(*id)
	if *language != "" {
		endpoint += "?language=" + url.QueryEscape(*language)
	}

	var resp models.PokemonDetail
	if err := doJSON(ctx, client, endpoint, &resp); err != nil {
		log.Fatalf("show failed: %v", err)
	}
	printJSON(resp)
}

func handleOfTheDay(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("of-the-day", flag.ExitOnError)
	date := fs.String("date", "", "date (YYYY-MM-DD, default today)")
	language := fs.String("language", "", "translation language")
	_ = fs.Parse(args)

	u, err := url.Parse(baseURL + "/pokemon/of-the-day")
	if err != nil {
		log.Fatalf("invalid base url: %v", err)
	}
	qv := u.Query()
	if *date != "" {
		qv.Set("date", *date)
	}
	if *language != "" {
		qv.Set("language", *language)
	}
	u.RawQuery = qv.Encode()

	var resp models.PokemonOfTheDay
	if err := doJSON(ctx, client, u.String(), &resp); err != nil {
		log.Fatalf("of-the-day failed: %v", err)
	}
	printJSON(resp)
}

func handleTypes(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("types", flag.ExitOnError)
	language := fs.String("language", "", "translation language")
	_ = fs.Parse(args)

	endpoint := baseURL + "/types"
	if *language != "" {
		endpoint += "?language=" + url.QueryEscape(*language)
	}

	var resp []models.TypeOption
	if err := doJSON(ctx, client, endpoint, &resp); err != nil {
		log.Fatalf("types failed: %v", err)
	}
	printJSON(resp)
}

func handleGenerations(ctx context.Context, client *http.Client, baseURL string, args []string) {
	fs := flag.NewFlagSet("generations", flag.ExitOnError)
	language := fs.String("language", "", "translation language")
	_ = fs.Parse(args)

	endpoint := baseURL + "/generations"
	if *language != "" {
		endpoint += "?language=" + url.QueryEscape(*language)
	}

	var resp []models.GenerationOption
	if err := doJSON(ctx, client, endpoint, &resp); err != nil {
		log.Fatalf("generations failed: %v", err)
	}
	printJSON(resp)
}

func doJSON(ctx context.Context, client *http.Client, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("GET %s failed: %s", endpoint, strings.TrimSpace(string(data)))
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(data, out)
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("json: %v", err)
	}
	fmt.Println(string(b))
}

func printUsage() {
	fmt.Println("pokehub <command> [flags]")
	fmt.Println("commands:")
	fmt.Println("  list        browse pokemon with filters and pagination")
	fmt.Println("  show        show one pokemon by id or name")
	fmt.Println("  of-the-day  show the daily pick")
	fmt.Println("  types       list type filter options")
	fmt.Println("  generations list generation filter options")
}
