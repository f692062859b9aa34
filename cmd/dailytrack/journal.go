package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dailytrack/internal/domain"
)

var timeNow = time.Now

func newFoodCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the food journal",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add FOOD CALORIES",
		Short: "Add a food entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, s *services, day string) error {
				before := len(s.nutrition.Day(day).Entries)
				s.nutrition.AddEntry(ctx, day, args[0], domain.ParseNumber(args[1]))
				if len(s.nutrition.Day(day).Entries) == before {
					logErrf("entry ignored: food must not be blank and calories must be a non-negative number\n")
				}
				fmt.Fprint(cmd.OutOrStdout(), renderNutrition(s.nutrition.Day(day)))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List the day's food entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(_ context.Context, s *services, day string) error {
				fmt.Fprint(cmd.OutOrStdout(), renderNutrition(s.nutrition.Day(day)))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm INDEX",
		Short: "Remove a food entry by its listed position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, s *services, day string) error {
				s.nutrition.DeleteEntry(ctx, day, index)
				fmt.Fprint(cmd.OutOrStdout(), renderNutrition(s.nutrition.Day(day)))
				return nil
			})
		},
	})
	return cmd
}

func newWorkoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workout",
		Short: "Manage the workout journal",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add NAME TYPE MINUTES",
		Short: "Add a workout session",
		Long:  "Add a workout session. TYPE is one of: " + workoutTypeList() + ".",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, s *services, day string) error {
				before := len(s.workouts.Day(day).Sessions)
				s.workouts.AddSession(ctx, day, args[0], domain.WorkoutType(args[1]), domain.ParseNumber(args[2]))
				if len(s.workouts.Day(day).Sessions) == before {
					logErrf("session ignored: name must not be blank, type one of %s and minutes a non-negative number\n", workoutTypeList())
				}
				fmt.Fprint(cmd.OutOrStdout(), renderWorkouts(s.workouts.Day(day)))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List the day's workout sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(_ context.Context, s *services, day string) error {
				fmt.Fprint(cmd.OutOrStdout(), renderWorkouts(s.workouts.Day(day)))
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm INDEX",
		Short: "Remove a workout session by its listed position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, s *services, day string) error {
				s.workouts.DeleteSession(ctx, day, index)
				fmt.Fprint(cmd.OutOrStdout(), renderWorkouts(s.workouts.Day(day)))
				return nil
			})
		},
	})
	return cmd
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update body measurements",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the body profile and BMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(_ context.Context, s *services, _ string) error {
				fmt.Fprint(cmd.OutOrStdout(), renderProfile(s.profile.Profile()))
				return nil
			})
		},
	})

	var weight, weightUnit, height, heightUnit string
	set := &cobra.Command{
		Use:   "set",
		Short: "Update body measurements; unset flags keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, s *services, _ string) error {
				p := s.profile.Profile()
				flags := cmd.Flags()
				if flags.Changed("weight") {
					p.Weight = domain.ParseNumber(weight)
				}
				if flags.Changed("weight-unit") {
					p.WeightUnit = domain.WeightUnit(weightUnit)
				}
				if flags.Changed("height") {
					p.Height = domain.ParseNumber(height)
				}
				if flags.Changed("height-unit") {
					p.HeightUnit = domain.HeightUnit(heightUnit)
				}
				fmt.Fprint(cmd.OutOrStdout(), renderProfile(s.profile.SaveProfile(ctx, p)))
				return nil
			})
		},
	}
	set.Flags().StringVar(&weight, "weight", "", "body weight")
	set.Flags().StringVar(&weightUnit, "weight-unit", "", "weight unit (kg or lb)")
	set.Flags().StringVar(&height, "height", "", "body height")
	set.Flags().StringVar(&heightUnit, "height-unit", "", "height unit (m, cm or in)")
	cmd.AddCommand(set)
	return cmd
}

func newBMICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bmi [WEIGHT WEIGHT_UNIT HEIGHT HEIGHT_UNIT]",
		Short: "Compute BMI from the profile or from the given measurements",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 4 {
				return fmt.Errorf("expected no arguments or 4, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 4 {
				res := domain.CalculateBMI(
					domain.ParseNumber(args[0]), domain.WeightUnit(args[1]),
					domain.ParseNumber(args[2]), domain.HeightUnit(args[3]),
				)
				fmt.Fprint(cmd.OutOrStdout(), renderBMI(res))
				return nil
			}
			return withServices(cmd, func(_ context.Context, s *services, _ string) error {
				fmt.Fprint(cmd.OutOrStdout(), renderBMI(s.profile.BMI()))
				return nil
			})
		},
	}
}

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the day's totals and BMI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(_ context.Context, s *services, day string) error {
				fmt.Fprint(cmd.OutOrStdout(), renderSummary(s.summary.Summary(day)))
				return nil
			})
		},
	}
}

// parseIndex reads a 1-based position as shown by ls.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	return n - 1, nil
}

func workoutTypeList() string {
	names := make([]string, len(domain.WorkoutTypes))
	for i, t := range domain.WorkoutTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
