package command

// Feed commands: view the home feed, trending posts, publish a post.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcritic/cmd/cli/command/client"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Community feed commands",
	Long:  `Read the community feed: stories and posts, trending posts, or publish your own.`,
}

var viewFeedCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the home feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		feed, err := httpClient.GetFeed()
		if err != nil {
			return fmt.Errorf("failed to get feed: %w", err)
		}

		if len(feed.Stories) > 0 {
			fmt.Printf("Stories (%d):\n", len(feed.Stories))
			for _, s := range feed.Stories {
				author := "unknown"
				if s.User != nil {
					author = s.User.Username
				}
				marker := " "
				if s.Viewed {
					marker = "✓"
				}
				fmt.Printf("  [%s] %s: %s (%s)\n", marker, author, s.MediaType, s.CreatedAt.Format("15:04"))
			}
			fmt.Println()
		}

		if len(feed.Posts) == 0 {
			fmt.Println("The feed is empty.")
			return nil
		}

		for _, p := range feed.Posts {
			printPost(&p)
		}
		return nil
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the most-liked posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		posts, err := httpClient.GetTrending()
		if err != nil {
			return fmt.Errorf("failed to get trending posts: %w", err)
		}

		if len(posts) == 0 {
			fmt.Println("Nothing trending right now.")
			return nil
		}

		for _, p := range posts {
			printPost(&p)
		}
		return nil
	},
}

var postFeedCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a post to the feed",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		var req client.CreatePostRequest
		req.Content, _ = cmd.Flags().GetString("content")
		if movieID, _ := cmd.Flags().GetString("movie"); movieID != "" {
			req.MovieID = &movieID
		}

		post, err := httpClient.CreatePost(&req)
		if err != nil {
			return fmt.Errorf("failed to publish post: %w", err)
		}

		fmt.Printf("✓ Post #%s published (%s).\n", post.ID, post.Status)
		return nil
	},
}

var likePostCmd = &cobra.Command{
	Use:   "like [post-id]",
	Short: "Toggle your like on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		post, err := httpClient.LikePost(args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle like: %w", err)
		}

		if post.IsLiked {
			fmt.Printf("✓ Liked post #%s (%d likes).\n", post.ID, post.LikeCount)
		} else {
			fmt.Printf("✓ Unliked post #%s (%d likes).\n", post.ID, post.LikeCount)
		}
		return nil
	},
}

var postCommentsCmd = &cobra.Command{
	Use:   "comments [post-id]",
	Short: "Show a post's comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		comments, err := httpClient.GetPostComments(args[0])
		if err != nil {
			return fmt.Errorf("failed to get comments: %w", err)
		}

		if len(comments) == 0 {
			fmt.Println("No comments yet.")
			return nil
		}

		for _, c := range comments {
			author := "unknown"
			if c.User != nil {
				author = c.User.Username
			}
			fmt.Printf("%s (%s): %s\n", author, c.CreatedAt.Format("2006-01-02 15:04"), c.Content)
		}
		return nil
	},
}

var commentPostCmd = &cobra.Command{
	Use:   "comment [post-id]",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		content, _ := cmd.Flags().GetString("content")
		comment, err := httpClient.CommentPost(args[0], content)
		if err != nil {
			return fmt.Errorf("failed to comment: %w", err)
		}

		fmt.Printf("✓ Comment #%s added to post #%s.\n", comment.ID, comment.PostID)
		return nil
	},
}

func printPost(p *client.PostResponse) {
	author := "unknown"
	if p.User != nil {
		author = p.User.Username
	}
	fmt.Printf("#%s by %s (%s)\n", p.ID, author, p.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println(p.Content)
	if p.Movie != nil {
		fmt.Printf("🎬 %s (%s)\n", p.Movie.Title, p.Movie.Year)
	}
	fmt.Printf("%d likes, %d comments\n", p.LikeCount, p.CommentCount)
	fmt.Println(strings.Repeat("-", 50))
}

func init() {
	rootCmd.AddCommand(feedCmd)
	feedCmd.AddCommand(viewFeedCmd)
	feedCmd.AddCommand(trendingCmd)
	feedCmd.AddCommand(postFeedCmd)
	feedCmd.AddCommand(likePostCmd)
	feedCmd.AddCommand(postCommentsCmd)
	feedCmd.AddCommand(commentPostCmd)

	postFeedCmd.Flags().StringP("content", "c", "", "Post text")
	postFeedCmd.Flags().StringP("movie", "m", "", "Optional movie ID to tag")
	postFeedCmd.MarkFlagRequired("content")

	commentPostCmd.Flags().StringP("content", "c", "", "Comment text")
	commentPostCmd.MarkFlagRequired("content")
}
