package command

// Movie browsing commands: list, get, search.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcritic/cmd/cli/command/client"
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Movie browsing commands",
	Long:  `Browse the movie catalog: list all movies, view details, search by title.`,
}

var listMoviesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all movies in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		movies, err := httpClient.GetAllMovies()
		if err != nil {
			return fmt.Errorf("failed to get movie list: %w", err)
		}

		if len(movies) == 0 {
			fmt.Println("No movies found.")
			return nil
		}

		fmt.Printf("Found %d movies:\n\n", len(movies))
		for _, m := range movies {
			fmt.Printf("ID: %s\n", m.ID)
			fmt.Printf("Title: %s (%s)\n", m.Title, m.Year)
			fmt.Printf("Rating: %.1f\n", m.AverageRating)
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var getMovieCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Get movie details by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		resolution, err := httpClient.ResolveMovie(args[0])
		if err != nil {
			return fmt.Errorf("failed to get movie: %w", err)
		}

		m := resolution.Movie
		fmt.Printf("ID: %s\n", m.ID)
		fmt.Printf("Title: %s\n", m.PrimaryTitle)
		fmt.Printf("Source: %s\n", resolution.Source)
		if resolution.Cause != "" {
			fmt.Printf("Cause: %s\n", resolution.Cause)
		}
		fmt.Printf("Released: %s\n", m.ReleaseDate)
		fmt.Printf("Rating: %.1f (%s)\n", m.AverageRating, m.ContentRating)
		if len(m.Genres) > 0 {
			fmt.Printf("Genres: %s\n", strings.Join(m.Genres, ", "))
		}
		if m.RuntimeMinutes > 0 {
			fmt.Printf("Runtime: %d min\n", m.RuntimeMinutes)
		}
		if m.Description != "" {
			fmt.Printf("Plot: %s\n", m.Description)
		}
		return nil
	},
}

var searchMoviesCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search movies by title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		query := strings.Join(args, " ")
		movies, err := httpClient.SearchMovies(query)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(movies) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, m := range movies {
			fmt.Printf("%s  %s (%s) [%s]\n", m.ID, m.Title, m.Year, m.Type)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(movieCmd)
	movieCmd.AddCommand(listMoviesCmd)
	movieCmd.AddCommand(getMovieCmd)
	movieCmd.AddCommand(searchMoviesCmd)
}
