package command

// Review commands: list a movie's reviews, post a review, like one.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcritic/cmd/cli/command/client"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review commands",
	Long:  `Read and write movie reviews: list a movie's reviews, post your own, like others.`,
}

var listReviewsCmd = &cobra.Command{
	Use:   "list [movie-id]",
	Short: "List reviews for a movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		reviews, err := httpClient.GetMovieReviews(args[0])
		if err != nil {
			return fmt.Errorf("failed to get reviews: %w", err)
		}

		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}

		for _, r := range reviews {
			author := "unknown"
			if r.User != nil {
				author = r.User.Username
			}
			fmt.Printf("#%s by %s: %d/5\n", r.ID, author, r.Rating)
			fmt.Println(r.Content)
			fmt.Printf("%d likes, %d comments, %s\n", r.LikeCount, r.CommentCount, r.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Println(strings.Repeat("-", 50))
		}
		return nil
	},
}

var postReviewCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a review on a movie",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		var req client.CreateReviewRequest
		req.MovieID, _ = cmd.Flags().GetString("movie")
		req.Content, _ = cmd.Flags().GetString("content")
		req.Rating, _ = cmd.Flags().GetInt("rating")

		review, err := httpClient.CreateReview(&req)
		if err != nil {
			return fmt.Errorf("failed to post review: %w", err)
		}

		fmt.Printf("✓ Review #%s posted.\n", review.ID)
		return nil
	},
}

var likeReviewCmd = &cobra.Command{
	Use:   "like [review-id]",
	Short: "Toggle your like on a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		review, err := httpClient.LikeReview(args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle like: %w", err)
		}

		if review.IsLiked {
			fmt.Printf("✓ Liked review #%s (%d likes).\n", review.ID, review.LikeCount)
		} else {
			fmt.Printf("✓ Unliked review #%s (%d likes).\n", review.ID, review.LikeCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.AddCommand(listReviewsCmd)
	reviewCmd.AddCommand(postReviewCmd)
	reviewCmd.AddCommand(likeReviewCmd)

	postReviewCmd.Flags().StringP("movie", "m", "", "Movie ID to review")
	postReviewCmd.Flags().StringP("content", "c", "", "Review text")
	postReviewCmd.Flags().IntP("rating", "r", 0, "Rating from 1 to 5")
	postReviewCmd.MarkFlagRequired("movie")
	postReviewCmd.MarkFlagRequired("content")
	postReviewCmd.MarkFlagRequired("rating")
}
