// healthctl is a terminal client for the healthtrack API. It covers the same
// surface as the mobile app screens: profile management, medical records,
// reminders and the AI chat assistant.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"healthtrack-app-server/internal/client"
	"healthtrack-app-server/internal/models"
)

var addr string

func apiClient() *client.Client {
	return client.New(addr)
}

func main() {
	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "Terminal client for the healthtrack API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultAddr := os.Getenv("HEALTHTRACK_ADDR")
	if defaultAddr == "" {
		defaultAddr = "http://localhost:3001"
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "base URL of the healthtrack server")

	root.AddCommand(userCmd(), recordsCmd(), remindersCmd(), chatCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "user", Short: "Manage user profiles"}

	var email, first, last, dob, phone string
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := apiClient().CreateUser(context.Background(), client.CreateUserParams{
				Email:       email,
				FirstName:   first,
				LastName:    last,
				DateOfBirth: dob,
				PhoneNumber: phone,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created user %s (%s %s)\n", user.UserID, user.FirstName, user.LastName)
			return nil
		},
	}
	create.Flags().StringVar(&email, "email", "", "email address")
	create.Flags().StringVar(&first, "first-name", "", "first name")
	create.Flags().StringVar(&last, "last-name", "", "last name")
	create.Flags().StringVar(&dob, "date-of-birth", "", "date of birth (YYYY-MM-DD)")
	create.Flags().StringVar(&phone, "phone", "", "phone number")
	create.MarkFlagRequired("email")
	create.MarkFlagRequired("first-name")
	create.MarkFlagRequired("last-name")

	get := &cobra.Command{
		Use:   "get <userId>",
		Short: "Show a user profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := apiClient().GetUser(context.Background(), args[0])
			if err != nil {
				return err
			}
			printUser(user)
			return nil
		},
	}

	var uFirst, uLast, uPhone string
	var history, allergies, medications []string
	update := &cobra.Command{
		Use:   "update <userId>",
		Short: "Update profile fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := client.UpdateUserParams{
				MedicalHistory: history,
				Allergies:      allergies,
				Medications:    medications,
			}
			if cmd.Flags().Changed("first-name") {
				params.FirstName = &uFirst
			}
			if cmd.Flags().Changed("last-name") {
				params.LastName = &uLast
			}
			if cmd.Flags().Changed("phone") {
				params.PhoneNumber = &uPhone
			}
			user, err := apiClient().UpdateUser(context.Background(), args[0], params)
			if err != nil {
				return err
			}
			printUser(user)
			return nil
		},
	}
	update.Flags().StringVar(&uFirst, "first-name", "", "first name")
	update.Flags().StringVar(&uLast, "last-name", "", "last name")
	update.Flags().StringVar(&uPhone, "phone", "", "phone number")
	update.Flags().StringSliceVar(&history, "medical-history", nil, "medical history entries")
	update.Flags().StringSliceVar(&allergies, "allergies", nil, "allergies")
	update.Flags().StringSliceVar(&medications, "medications", nil, "current medications")

	cmd.AddCommand(create, get, update)
	return cmd
}

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "records", Short: "Manage medical records"}

	list := &cobra.Command{
		Use:   "list <userId>",
		Short: "List a user's medical records, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := apiClient().ListMedicalRecords(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("no records")
				return nil
			}
			for _, r := range records {
				fmt.Printf("%s  %-13s %-10s %s\n", r.RecordID, r.Type, r.Date, r.Title)
			}
			return nil
		},
	}

	var user, rtype, title, desc, date, doctor, hospital string
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a medical record",
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := apiClient().CreateMedicalRecord(context.Background(), client.CreateMedicalRecordParams{
				UserID:      user,
				Type:        models.MedicalRecordType(rtype),
				Title:       title,
				Description: desc,
				Date:        date,
				Doctor:      doctor,
				Hospital:    hospital,
			})
			if err != nil {
				return err
			}
			fmt.Printf("created record %s\n", record.RecordID)
			return nil
		},
	}
	add.Flags().StringVar(&user, "user", "", "user id")
	add.Flags().StringVar(&rtype, "type", "", "record type (appointment, test_result, prescription, symptom, vaccination, surgery)")
	add.Flags().StringVar(&title, "title", "", "title")
	add.Flags().StringVar(&desc, "description", "", "description")
	add.Flags().StringVar(&date, "date", "", "record date (ISO-8601)")
	add.Flags().StringVar(&doctor, "doctor", "", "doctor name")
	add.Flags().StringVar(&hospital, "hospital", "", "hospital name")
	add.MarkFlagRequired("user")
	add.MarkFlagRequired("type")
	add.MarkFlagRequired("title")
	add.MarkFlagRequired("description")
	add.MarkFlagRequired("date")

	var uTitle, uDesc string
	update := &cobra.Command{
		Use:   "update <recordId>",
		Short: "Update record fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params client.UpdateMedicalRecordParams
			if cmd.Flags().Changed("title") {
				params.Title = &uTitle
			}
			if cmd.Flags().Changed("description") {
				params.Description = &uDesc
			}
			record, err := apiClient().UpdateMedicalRecord(context.Background(), args[0], params)
			if err != nil {
				return err
			}
			fmt.Printf("updated record %s\n", record.RecordID)
			return nil
		},
	}
	update.Flags().StringVar(&uTitle, "title", "", "title")
	update.Flags().StringVar(&uDesc, "description", "", "description")

	rm := &cobra.Command{
		Use:   "rm <recordId>",
		Short: "Delete a medical record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().DeleteMedicalRecord(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, update, rm)
	return cmd
}

func remindersCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "reminders", Short: "Manage reminders"}

	list := &cobra.Command{
		Use:   "list <userId>",
		Short: "List a user's reminders, soonest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reminders, err := apiClient().ListReminders(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(reminders) == 0 {
				fmt.Println("no reminders")
				return nil
			}
			for _, r := range reminders {
				fmt.Printf("%-25s %-12s %-9s %s\n", r.ScheduledTime, r.Type, r.Status, r.Title)
			}
			return nil
		},
	}

	var when, note string
	save := &cobra.Command{
		Use:   "save <userId>",
		Short: "Save a quick reminder note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apiClient().SaveReminder(context.Background(), args[0], when, note); err != nil {
				return err
			}
			fmt.Println("saved")
			return nil
		},
	}
	save.Flags().StringVar(&when, "time", "", "reminder time")
	save.Flags().StringVar(&note, "note", "", "reminder note")
	save.MarkFlagRequired("time")
	save.MarkFlagRequired("note")

	cmd.AddCommand(list, save)
	return cmd
}

func chatCmd() *cobra.Command {
	var user, conversation string
	cmd := &cobra.Command{
		Use:   "chat <message...>",
		Short: "Send a message to the AI health assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := apiClient().Chat(context.Background(), client.ChatParams{
				UserID:         user,
				Message:        strings.Join(args, " "),
				ConversationID: conversation,
			})
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			fmt.Printf("\nconversation: %s  urgency: %s\n", result.ConversationID, result.Urgency)
			for _, s := range result.Suggestions {
				fmt.Println("  -", s)
			}
			if result.ShouldSeeDoctor {
				fmt.Println("\n⚠ consider seeing a doctor about this")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&conversation, "conversation", "", "conversation id to continue")
	cmd.MarkFlagRequired("user")
	return cmd
}

func printUser(user *models.User) {
	fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
	fmt.Printf("  id:           %s\n", user.UserID)
	if user.DateOfBirth != "" {
		fmt.Printf("  born:         %s\n", user.DateOfBirth)
	}
	if user.PhoneNumber != "" {
		fmt.Printf("  phone:        %s\n", user.PhoneNumber)
	}
	if len(user.MedicalHistory) > 0 {
		fmt.Printf("  history:      %s\n", strings.Join(user.MedicalHistory, ", "))
	}
	if len(user.Allergies) > 0 {
		fmt.Printf("  allergies:    %s\n", strings.Join(user.Allergies, ", "))
	}
	if len(user.Medications) > 0 {
		fmt.Printf("  medications:  %s\n", strings.Join(user.Medications, ", "))
	}
	if user.EmergencyContact != nil {
		fmt.Printf("  emergency:    %s (%s) %s\n", user.EmergencyContact.Name, user.EmergencyContact.Relationship, user.EmergencyContact.Phone)
	}
}
