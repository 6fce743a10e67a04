package cmd

import (
	"fmt"

	"prompt-library/core/promptdb"
	"prompt-library/core/utils"

	"github.com/spf13/cobra"
)

var (
	promptCategory string
	promptTags     string
	promptRating   int
	promptNotes    string
	promptImage    string
	searchText     string
	searchLimit    int
)

// promptCmd groups the prompt commands.
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage stored prompts",
}

var promptAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Store a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		res, err := a.library.Add(promptdb.NewPrompt{
			Text:        args[0],
			Category:    promptCategory,
			Tags:        utils.SplitList(promptTags),
			Rating:      promptRating,
			Notes:       promptNotes,
			SourceImage: promptImage,
		})
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var promptShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		rec, err := a.library.Get(id)
		if err != nil {
			return err
		}
		return printJSON(rec)
	},
}

var promptUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change fields of a prompt",
	Long:  `Only the flags given on the command line are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}

		var u promptdb.PromptUpdate
		flags := cmd.Flags()
		if flags.Changed("text") {
			text, _ := flags.GetString("text")
			u.Text = &text
		}
		if flags.Changed("category") {
			u.Category = &promptCategory
		}
		if flags.Changed("tags") {
			tags := utils.SplitList(promptTags)
			u.Tags = &tags
		}
		if flags.Changed("rating") {
			u.Rating = &promptRating
		}
		if flags.Changed("notes") {
			u.Notes = &promptNotes
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		rec, err := a.library.Update(id, u)
		if err != nil {
			return err
		}
		return printJSON(rec)
	},
}

var promptDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := utils.ParseID(args[0])
		if err != nil {
			return err
		}
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		removed, err := a.library.Delete(id)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: %d", promptdb.ErrNotFound, id)
		}
		fmt.Printf("Deleted prompt %d\n", id)
		return nil
	},
}

var promptSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search prompts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		return printJSON(a.library.Search(promptdb.SearchQuery{
			Text:       searchText,
			Category:   promptCategory,
			Tags:       utils.SplitList(promptTags),
			MinRating:  promptRating,
			MaxResults: searchLimit,
		}))
	},
}

var promptLatestCmd = &cobra.Command{
	Use:   "latest <category>",
	Short: "Show the newest prompt of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		rec, ok := a.library.Latest("", args[0])
		if !ok {
			return fmt.Errorf("no prompt in category %q", args[0])
		}
		return printJSON(rec)
	},
}

var promptUseCmd = &cobra.Command{
	Use:   "use <category>",
	Short: "Print the text of the newest prompt of a category",
	Long:  `Prints only the prompt text so it can be piped into a generator.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		rec, ok := a.library.Latest("", args[0])
		if !ok {
			return fmt.Errorf("no prompt in category %q", args[0])
		}
		fmt.Println(rec.Text)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{promptAddCmd, promptUpdateCmd} {
		c.Flags().StringVarP(&promptCategory, "category", "c", "", "Category")
		c.Flags().StringVarP(&promptTags, "tags", "t", "", "Comma-separated tags")
		c.Flags().IntVarP(&promptRating, "rating", "r", 0, "Rating from 0 (unrated) to 5")
		c.Flags().StringVarP(&promptNotes, "notes", "n", "", "Notes")
	}
	promptAddCmd.Flags().StringVar(&promptImage, "image", "", "Image to use as first thumbnail")
	promptUpdateCmd.Flags().String("text", "", "New prompt text")

	promptSearchCmd.Flags().StringVarP(&searchText, "query", "q", "", "Text to look for in prompts and notes")
	promptSearchCmd.Flags().StringVarP(&promptCategory, "category", "c", "", "Category")
	promptSearchCmd.Flags().StringVarP(&promptTags, "tags", "t", "", "Comma-separated tags, any match")
	promptSearchCmd.Flags().IntVarP(&promptRating, "min-rating", "r", 0, "Minimum rating")
	promptSearchCmd.Flags().IntVarP(&searchLimit, "limit", "l", promptdb.DefaultMaxResults, "Maximum results")

	promptCmd.AddCommand(promptAddCmd, promptShowCmd, promptUpdateCmd, promptDeleteCmd,
		promptSearchCmd, promptLatestCmd, promptUseCmd)
	RootCmd.AddCommand(promptCmd)
}
