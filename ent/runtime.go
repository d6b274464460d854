// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ysaito/tango/ent/attempt"
	"github.com/ysaito/tango/ent/item"
	"github.com/ysaito/tango/ent/progress"
	"github.com/ysaito/tango/ent/schema"
	"github.com/ysaito/tango/ent/session"
	"github.com/ysaito/tango/ent/setting"
	"github.com/ysaito/tango/ent/trophy"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescItemID is the schema descriptor for item_id field.
	attemptDescItemID := attemptFields[0].Descriptor()
	// attempt.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	attempt.ItemIDValidator = attemptDescItemID.Validators[0].(func(string) error)
	// attemptDescSkill is the schema descriptor for skill field.
	attemptDescSkill := attemptFields[1].Descriptor()
	// attempt.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	attempt.SkillValidator = attemptDescSkill.Validators[0].(func(string) error)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescSource is the schema descriptor for source field.
	itemDescSource := itemFields[1].Descriptor()
	// item.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	item.SourceValidator = itemDescSource.Validators[0].(func(string) error)
	// itemDescCategory is the schema descriptor for category field.
	itemDescCategory := itemFields[3].Descriptor()
	// item.DefaultCategory holds the default value on creation for the category field.
	item.DefaultCategory = itemDescCategory.Default.(string)
	// itemDescExample is the schema descriptor for example field.
	itemDescExample := itemFields[5].Descriptor()
	// item.DefaultExample holds the default value on creation for the example field.
	item.DefaultExample = itemDescExample.Default.(string)
	// itemDescNote is the schema descriptor for note field.
	itemDescNote := itemFields[6].Descriptor()
	// item.DefaultNote holds the default value on creation for the note field.
	item.DefaultNote = itemDescNote.Default.(string)
	// itemDescStatus is the schema descriptor for status field.
	itemDescStatus := itemFields[7].Descriptor()
	// item.DefaultStatus holds the default value on creation for the status field.
	item.DefaultStatus = itemDescStatus.Default.(string)
	// itemDescCreatedAt is the schema descriptor for created_at field.
	itemDescCreatedAt := itemFields[8].Descriptor()
	// item.DefaultCreatedAt holds the default value on creation for the created_at field.
	item.DefaultCreatedAt = itemDescCreatedAt.Default.(func() time.Time)
	// itemDescID is the schema descriptor for id field.
	itemDescID := itemFields[0].Descriptor()
	// item.IDValidator is a validator for the "id" field. It is called by the builders before save.
	item.IDValidator = itemDescID.Validators[0].(func(string) error)
	progressFields := schema.Progress{}.Fields()
	_ = progressFields
	// progressDescItemID is the schema descriptor for item_id field.
	progressDescItemID := progressFields[0].Descriptor()
	// progress.ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	progress.ItemIDValidator = progressDescItemID.Validators[0].(func(string) error)
	// progressDescSkill is the schema descriptor for skill field.
	progressDescSkill := progressFields[1].Descriptor()
	// progress.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	progress.SkillValidator = progressDescSkill.Validators[0].(func(string) error)
	// progressDescStage is the schema descriptor for stage field.
	progressDescStage := progressFields[2].Descriptor()
	// progress.DefaultStage holds the default value on creation for the stage field.
	progress.DefaultStage = progressDescStage.Default.(int)
	// progress.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	progress.StageValidator = progressDescStage.Validators[0].(func(int) error)
	// progressDescNextDue is the schema descriptor for next_due field.
	progressDescNextDue := progressFields[3].Descriptor()
	// progress.NextDueValidator is a validator for the "next_due" field. It is called by the builders before save.
	progress.NextDueValidator = progressDescNextDue.Validators[0].(func(string) error)
	// progressDescCorrectCount is the schema descriptor for correct_count field.
	progressDescCorrectCount := progressFields[4].Descriptor()
	// progress.DefaultCorrectCount holds the default value on creation for the correct_count field.
	progress.DefaultCorrectCount = progressDescCorrectCount.Default.(int)
	// progress.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	progress.CorrectCountValidator = progressDescCorrectCount.Validators[0].(func(int) error)
	// progressDescWrongCount is the schema descriptor for wrong_count field.
	progressDescWrongCount := progressFields[5].Descriptor()
	// progress.DefaultWrongCount holds the default value on creation for the wrong_count field.
	progress.DefaultWrongCount = progressDescWrongCount.Default.(int)
	// progress.WrongCountValidator is a validator for the "wrong_count" field. It is called by the builders before save.
	progress.WrongCountValidator = progressDescWrongCount.Validators[0].(func(int) error)
	// progressDescAccuracy is the schema descriptor for accuracy field.
	progressDescAccuracy := progressFields[6].Descriptor()
	// progress.DefaultAccuracy holds the default value on creation for the accuracy field.
	progress.DefaultAccuracy = progressDescAccuracy.Default.(float64)
	// progressDescMastered is the schema descriptor for mastered field.
	progressDescMastered := progressFields[7].Descriptor()
	// progress.DefaultMastered holds the default value on creation for the mastered field.
	progress.DefaultMastered = progressDescMastered.Default.(bool)
	// progressDescCompleteMaster is the schema descriptor for complete_master field.
	progressDescCompleteMaster := progressFields[8].Descriptor()
	// progress.DefaultCompleteMaster holds the default value on creation for the complete_master field.
	progress.DefaultCompleteMaster = progressDescCompleteMaster.Default.(bool)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescUpdatedAt is the schema descriptor for updated_at field.
	sessionDescUpdatedAt := sessionFields[2].Descriptor()
	// session.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	session.DefaultUpdatedAt = sessionDescUpdatedAt.Default.(func() time.Time)
	// session.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	session.UpdateDefaultUpdatedAt = sessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescID is the schema descriptor for id field.
	settingDescID := settingFields[0].Descriptor()
	// setting.IDValidator is a validator for the "id" field. It is called by the builders before save.
	setting.IDValidator = settingDescID.Validators[0].(func(string) error)
	trophyFields := schema.Trophy{}.Fields()
	_ = trophyFields
	// trophyDescCode is the schema descriptor for code field.
	trophyDescCode := trophyFields[0].Descriptor()
	// trophy.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	trophy.CodeValidator = trophyDescCode.Validators[0].(func(string) error)
	// trophyDescAchievedAt is the schema descriptor for achieved_at field.
	trophyDescAchievedAt := trophyFields[1].Descriptor()
	// trophy.DefaultAchievedAt holds the default value on creation for the achieved_at field.
	trophy.DefaultAchievedAt = trophyDescAchievedAt.Default.(func() time.Time)
}
