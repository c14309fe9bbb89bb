package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         "setup",
			Description:  "Set up the bot with 4 members",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "member1",
					Description: "First member name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "member2",
					Description: "Second member name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "member3",
					Description: "Third member name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "member4",
					Description: "Fourth member name",
					Required:    true,
				},
			},
		},
		{
			Name:         "addmember",
			Description:  "Add a new member",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Member name to add",
					Required:    true,
				},
			},
		},
		{
			Name:         "removemember",
			Description:  "Remove a member",
			DMPermission: boolPtr(false),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "name",
					Description: "Member name to remove",
					Required:    true,
				},
			},
		},
		{
			Name:         "members",
			Description:  "Show all members",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "today",
			Description:  "Show today's collection summary",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "report",
			Description:  "Generate weekly report",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "clear",
			Description:  "Clear all payment data for a new week",
			DMPermission: boolPtr(false),
		},
		{
			Name:         "help",
			Description:  "Show bot help",
			DMPermission: boolPtr(false),
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
