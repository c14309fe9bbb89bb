package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ktsuji/shorekeeper/internal/db"
	"github.com/ktsuji/shorekeeper/internal/ledger"
)

// HandleSetup replaces the roster with the four given members and pins the
// report channel to wherever the command was run.
func HandleSetup(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB) {
	data := i.ApplicationCommandData()
	names := []string{
		optionString(data, "member1"),
		optionString(data, "member2"),
		optionString(data, "member3"),
		optionString(data, "member4"),
	}

	ctx := context.Background()
	led, err := store.LoadLedger(ctx)
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}

	members := led.Setup(names, i.ChannelID)
	if err := store.SaveLedger(ctx, led); err != nil {
		respond(s, i, "❌ Failed to save collection data.")
		return
	}

	respond(s, i, fmt.Sprintf(
		"✅ **Bot Setup Complete!**\n\n"+
			"👥 **Members:** %s\n"+
			"📢 **Report Channel:** <#%s>\n\n"+
			"📝 **How to record payments:**\n"+
			"`@username amount paid` (e.g., `@john 50 paid`)\n\n"+
			"📅 **Schedule:**\n"+
			"• **Tue-Sat:** Collection days\n"+
			"• **Sunday 9 AM:** Automatic weekly report",
		joinMentions(members), i.ChannelID))
}

func HandleAddMember(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB) {
	name := optionString(i.ApplicationCommandData(), "name")

	ctx := context.Background()
	led, err := store.LoadLedger(ctx)
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}

	added, err := led.AddMember(name)
	if errors.Is(err, ledger.ErrDuplicateMember) {
		respond(s, i, fmt.Sprintf("⚠️ **@%s** is already in the list!", added))
		return
	}

	if err := store.SaveLedger(ctx, led); err != nil {
		respond(s, i, "❌ Failed to save collection data.")
		return
	}
	respond(s, i, fmt.Sprintf("✅ Added **@%s** to the member list!", added))
}

func HandleRemoveMember(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB) {
	name := optionString(i.ApplicationCommandData(), "name")

	ctx := context.Background()
	led, err := store.LoadLedger(ctx)
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}

	removed, err := led.RemoveMember(name)
	if errors.Is(err, ledger.ErrMemberNotFound) {
		respond(s, i, fmt.Sprintf("⚠️ **@%s** is not in the list!", removed))
		return
	}

	if err := store.SaveLedger(ctx, led); err != nil {
		respond(s, i, "❌ Failed to save collection data.")
		return
	}
	respond(s, i, fmt.Sprintf("✅ Removed **@%s** from the member list!", removed))
}

func HandleMembers(s *discordgo.Session, i *discordgo.InteractionCreate, store *db.DB) {
	led, err := store.LoadLedger(context.Background())
	if err != nil {
		respond(s, i, "❌ Failed to load collection data.")
		return
	}

	if len(led.Members) == 0 {
		respond(s, i, "❌ No members set up yet. Use `/setup` first!")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "👥 **Tracked Members (%d):**\n", len(led.Members))
	for _, m := range led.Members {
		fmt.Fprintf(&b, "• @%s\n", m)
	}
	respond(s, i, strings.TrimRight(b.String(), "\n"))
}

func joinMentions(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = "@" + n
	}
	return strings.Join(out, ", ")
}
